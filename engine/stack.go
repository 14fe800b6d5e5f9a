package engine

import gm "github.com/oliverans/goosesearch/goosemg"

// SearchInfo is the per-ply scratch space threaded through negamax and
// quiescence: the cached static eval (the "accumulator" slot — this
// evaluator is classical/stateless, so there is nothing to incrementally
// update beyond the cached value itself), the move played to reach the
// child, killers, and the PV buffer. Engine.ss holds MaxPly+4 of these so
// that ss4(ply-4) is always addressable without bounds checks at the
// negamax call sites that read ss-1/ss-2/ss-4.
type SearchInfo struct {
	StaticEval Value
	PlayedMove gm.Move
	Killers    [2]gm.Move
	PV         [MaxPly]gm.Move
	PVLength   int
}

// resetSearchStack zeroes every SearchInfo slot at the start of a new
// search (startSearch in the driver).
func (e *Engine) resetSearchStack() {
	for i := range e.ss {
		e.ss[i] = SearchInfo{StaticEval: ValueNone}
	}
}

// pushPosition snapshots the current position into posStack[ply] and
// advances ply.
func (e *Engine) pushPosition() {
	e.posStack[e.ply] = e.pos.Snapshot()
	e.ply++
}

// popPosition rewinds ply and restores the position from posStack[ply] —
// this, not a symmetric undo call, is how make/unmake is reversed.
func (e *Engine) popPosition() {
	e.ply--
	e.pos.Restore(e.posStack[e.ply])
}

// playMove counts the node, polls the clock every 32768 nodes, records the
// played move on the current ply's SearchInfo, snapshots the position, and
// plays m.
func (e *Engine) playMove(m gm.Move) {
	e.nodesSearched++
	if e.nodesSearched%32768 == 0 {
		e.checkTime()
	}
	e.ss4(e.ply).PlayedMove = m
	e.pushPosition()
	e.pos.DoMove(m)
}

func (e *Engine) playNullMove() {
	e.nodesSearched++
	if e.nodesSearched%32768 == 0 {
		e.checkTime()
	}
	e.ss4(e.ply).PlayedMove = NoMove
	e.pushPosition()
	e.pos.DoNullMove()
}

// cancelMove reverses playMove or playNullMove; the same restore works for
// both since the snapshot was taken before either kind of move was played.
func (e *Engine) cancelMove() { e.popPosition() }

// updatePV grafts the child's PV onto the parent's: ss.PV[ply] becomes
// move, followed by the child's PV from ply+1 onward.
func updatePV(ss, child *SearchInfo, ply int, move gm.Move) {
	ss.PV[ply] = move
	if child.PVLength > ply+1 {
		copy(ss.PV[ply+1:child.PVLength], child.PV[ply+1:child.PVLength])
	}
	ss.PVLength = child.PVLength
}
