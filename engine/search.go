package engine

import (
	"fmt"
	"sort"
	"time"

	gm "github.com/oliverans/goosesearch/goosemg"
)

// StartSearch runs the C7 iterative-deepening driver to completion (depth
// limit, node limit, time limit, or an external RequestStop) and returns
// the best move found. It prints one "info ..." line per completed
// iteration as the teacher's UCI loop does, via fmt.Println.
func (e *Engine) StartSearch(limits SearchLimits) gm.Move {
	e.limits = limits
	e.History.Decay()
	e.ply = 0
	e.nodesSearched = 0
	e.selDepth = 0
	e.rootColor = e.pos.SideToMove()
	e.resetSearchStack()
	e.cutStats = CutStatistics{}
	e.searchStable = 0

	e.setStopState(StateRunning)
	e.startClock()
	e.computeDeadline()

	legal := e.pos.Moves()
	e.rootMoves = make([]RootMove, len(legal))
	for i, m := range legal {
		e.rootMoves[i] = RootMove{Move: m}
	}
	if len(e.rootMoves) == 0 {
		e.setStopState(StateIdle)
		return NoMove
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	var lastScore Value
	haveResult := false

	for rootDepth := 1; rootDepth <= maxDepth; rootDepth++ {
		if limits.Nodes > 0 && e.nodesSearched >= limits.Nodes {
			break
		}
		e.rootDepth = rootDepth

		score, aborted := e.searchOneIteration(rootDepth, lastScore)
		if aborted {
			break
		}

		haveResult = true
		lastScore = score
		bestMove := e.ss4(0).PV[0]
		selDepth := e.selDepth

		if bestMove == e.lastBestMove {
			e.searchStable = Min(e.searchStable+1, 10)
		} else {
			e.searchStable = 0
		}
		e.lastBestMove = bestMove
		e.lastScore = score

		for i := range e.rootMoves {
			e.rootMoves[i].PrevScore = e.rootMoves[i].Score
		}
		sort.SliceStable(e.rootMoves, func(i, j int) bool {
			return e.rootMoves[i].PrevScore > e.rootMoves[j].PrevScore
		})

		fmt.Println(e.InfoLine(rootDepth, selDepth, score))

		if absValue(score) >= ValueMateInMaxPly {
			break
		}

		if e.deadline.timed && rootDepth >= 4 {
			if rootDepth >= 40 && absValue(score) < 5 {
				break
			}
			budget := time.Duration(float64(e.deadline.limit) * (1 - 0.05*float64(e.searchStable)))
			if e.elapsed() > budget {
				break
			}
		}
	}

	e.setStopState(StateIdle)
	e.dumpCutStats()
	if !haveResult {
		return e.rootMoves[0].Move
	}
	return e.lastBestMove
}

// searchOneIteration runs rootDepth as a full-window search (shallow
// depths) or inside the aspiration-window loop, per C7.
func (e *Engine) searchOneIteration(rootDepth int, lastScore Value) (score Value, aborted bool) {
	if rootDepth < 4 {
		score = e.negaMax(-ValueInfinite, ValueInfinite, rootDepth, 0, false, Root)
		return score, e.stopRequested()
	}

	window := Value(10)
	alpha := lastScore - window
	beta := lastScore + window
	failedHighCnt := 0

	for {
		adjustedDepth := Max(1, rootDepth-failedHighCnt)
		score = e.negaMax(alpha, beta, adjustedDepth, 0, false, Root)
		if e.stopRequested() {
			return score, true
		}

		if score >= ValueMateInMaxPly {
			// Widen upward without converging yet: a forced mate must not
			// get trapped re-triggering fail-high against a narrow beta.
			// The fail-low/fail-high/converge checks below still run
			// against the now-widened window.
			beta = ValueInfinite
			failedHighCnt = 0
		}

		switch {
		case score <= alpha:
			beta = (alpha + beta) / 2
			alpha = maxValue(-ValueInfinite, alpha-window)
			failedHighCnt = 0
		case score >= beta:
			beta = minValue(ValueInfinite, beta+window)
			failedHighCnt++
		default:
			return score, false
		}
		window += window / 3
	}
}
