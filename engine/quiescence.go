package engine

import gm "github.com/oliverans/goosesearch/goosemg"

// quiescence extends the search along captures/promotions until the
// position is quiet, then evaluates. ply is this node's ply (the caller's
// ply+1). See spec component C5 for the exact procedure this follows.
func (e *Engine) quiescence(nt NodeType, alpha, beta Value, ply int) Value {
	if e.pos.HalfMoveClock() >= 100 {
		return e.drawValue()
	}

	if ply >= MaxPly {
		return e.Eval.Evaluate(&e.pos)
	}

	pvNode := nt == PV
	ss := e.ss4(ply)

	key := e.pos.Key()
	entry, hit := e.TT.Probe(key)
	var ttMove gm.Move
	var ttValue Value
	if hit {
		ttMove = entry.Move
		ttValue = Value(entry.Value)
		if !pvNode && entry.Flag&flagForTT(ttValue >= beta) != 0 {
			e.cutStats.QBetaCutoffs++
			return ttValue
		}
	}

	inCheck := e.pos.InCheck()
	var bestValue Value
	var moves []gm.Move
	alphaRaised := false

	if inCheck {
		bestValue = -ValueInfinite
		ss.StaticEval = ValueNone
		moves = e.pos.Moves()
		if len(moves) == 0 {
			return matedIn(ply)
		}
	} else {
		var eval Value
		if hit {
			eval = Value(entry.StaticEval)
		} else {
			eval = e.Eval.Evaluate(&e.pos)
		}
		ss.StaticEval = eval
		bestValue = eval
		if hit && entry.Flag&flagForTT(ttValue > eval) != 0 {
			bestValue = ttValue
		}
		if bestValue >= beta {
			e.cutStats.QStandPatCutoffs++
			return bestValue
		}
		if bestValue > alpha {
			alpha = bestValue
			alphaRaised = true
		}
		moves = e.pos.AggressiveMoves()
	}

	scores := make([]int32, len(moves))
	ScoreMoves(&e.pos, moves, scores, ttMove, ss.Killers, &e.History)

	childNT := NonPV
	if pvNode {
		childNT = PV
	}

	bestMove := NoMove
	for i := 0; i < len(moves); i++ {
		m := NextBestMove(moves, scores, i)

		if !inCheck && !e.pos.SeeGE(m, -95) {
			continue
		}

		e.playMove(m)
		value := -e.quiescence(childNT, -beta, -alpha, ply+1)
		e.cancelMove()

		if e.stopRequested() {
			return e.drawValue()
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				alphaRaised = true
				if alpha >= beta {
					e.TT.Store(key, Lower, 0, bestMove, int16(bestValue), int16(ss.StaticEval))
					e.cutStats.QBetaCutoffs++
					return bestValue
				}
			}
		}
	}

	flag := Upper
	if alphaRaised {
		flag = Exact
	}
	e.TT.Store(key, flag, 0, bestMove, int16(bestValue), int16(ss.StaticEval))
	return bestValue
}
