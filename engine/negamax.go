package engine

import gm "github.com/oliverans/goosesearch/goosemg"

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// negaMax is C6: alpha-beta over a Root/PV/NonPV split. ply is this node's
// ply (0 at the search root). cutNode marks a node expected to fail high,
// feeding the late-move-reduction and internal-iterative-reduction
// heuristics.
func (e *Engine) negaMax(alpha, beta Value, depth, ply int, cutNode bool, nt NodeType) Value {
	pvNode := nt != NonPV

	if ply >= MaxPly {
		return e.Eval.Evaluate(&e.pos)
	}
	ss := e.ss4(ply)

	if pvNode {
		ss.PVLength = ply
		if ply+1 > e.selDepth {
			e.selDepth = ply + 1
		}
	}
	if e.stopRequested() {
		return e.drawValue()
	}
	e.ss4(ply + 1).Killers = [2]gm.Move{}

	if nt != Root {
		if v, drawn := e.checkDrawNonRoot(); drawn {
			return v
		}
		alpha = maxValue(alpha, Value(ply)-ValueMate)
		beta = minValue(beta, ValueMate-Value(ply)-1)
		if alpha >= beta {
			return alpha
		}
	}

	key := e.pos.Key()
	entry, hit := e.TT.Probe(key)
	var ttMove gm.Move
	var ttValue Value
	if hit {
		ttMove = entry.Move
		ttValue = Value(entry.Value)
	}
	if nt == Root && ttMove == NoMove && len(e.rootMoves) > 0 {
		ttMove = e.rootMoves[0].Move
	}
	if nt == NonPV && hit && int(entry.Depth) >= depth && entry.Flag&flagForTT(ttValue >= beta) != 0 {
		return ttValue
	}

	inCheck := e.pos.InCheck()
	if inCheck {
		depth = Max(1, depth+1)
	}

	if depth <= 0 {
		childNT := NonPV
		if pvNode {
			childNT = PV
		}
		return e.quiescence(childNT, alpha, beta, ply)
	}

	var eval Value
	improving := false
	if inCheck {
		eval = ValueNone
		ss.StaticEval = ValueNone
	} else {
		if hit {
			eval = Value(entry.StaticEval)
		} else {
			eval = e.Eval.Evaluate(&e.pos)
		}
		if hit && entry.Flag&flagForTT(ttValue > eval) != 0 {
			eval = ttValue
		}
		ss.StaticEval = eval

		if prev2 := e.ss4(ply - 2).StaticEval; prev2 != ValueNone {
			improving = eval > prev2
		} else if prev4 := e.ss4(ply - 4).StaticEval; prev4 != ValueNone {
			improving = eval > prev4
		}

		if nt != Root {
			// Razoring: a hopeless-looking static eval gets a cheap qsearch
			// verification before paying for a full move loop.
			if eval < alpha-400-500*Value(depth) {
				if v := e.quiescence(NonPV, alpha-1, alpha, ply); v < alpha {
					e.cutStats.RazoringCutoffs++
					return v
				}
			}

			// Reverse futility: the position looks so good even a generous
			// margin still clears beta.
			if nt == NonPV && depth < 9 && absValue(eval) < ValueTBWinInMaxPly &&
				eval >= beta && eval+120*Value(btoi(improving))-140*Value(depth) >= beta {
				e.cutStats.StaticNullCutoffs++
				return eval
			}

			// Null move: skip our move entirely and see if the opponent is
			// still in trouble at a reduced depth.
			if nt == NonPV && e.ss4(ply-1).PlayedMove != NoMove && eval >= beta &&
				e.pos.HasNonPawns(e.pos.SideToMove()) && beta > ValueTBLossInMaxPly {
				r := Min(int((eval-beta)/200), 3) + depth/3 + 4
				e.playNullMove()
				v := -e.negaMax(-beta, -beta+1, depth-r, ply+1, !cutNode, NonPV)
				e.cancelMove()
				if v >= beta && absValue(v) < ValueTBWinInMaxPly {
					e.cutStats.NullMoveCutoffs++
					return v
				}
			}
		}
	}

	// Internal iterative reduction: no TT move at an expected-cut node
	// means the hash move ordering benefit is absent; shave depth instead
	// of paying full price for a move loop without the tt move's guidance.
	if cutNode && depth >= 4 && ttMove == NoMove {
		depth -= 2
	}

	var moves []gm.Move
	var scores []int32
	if nt == Root {
		moves = make([]gm.Move, len(e.rootMoves))
		for i, rm := range e.rootMoves {
			moves[i] = rm.Move
			e.rootMoves[i].Score = -ValueInfinite
		}
	} else {
		moves = e.pos.Moves()
		scores = make([]int32, len(moves))
		ScoreMoves(&e.pos, moves, scores, ttMove, ss.Killers, &e.History)
	}

	if len(moves) == 0 {
		if inCheck {
			return matedIn(ply)
		}
		return ValueDraw
	}

	bestValue := Value(-ValueInfinite)
	bestMove := NoMove
	playedMoves := 0

	for i := 0; i < len(moves); i++ {
		var m gm.Move
		if nt == Root {
			m = nextBestRootMove(e.rootMoves, i)
		} else {
			m = NextBestMove(moves, scores, i)
		}

		if nt != Root && bestValue > ValueTBLossInMaxPly && m.PromotionPiece() == gm.NoPiece &&
			m.CapturedPiece() != gm.NoPiece {
			if !e.pos.SeeGE(m, -260*depth) {
				continue
			}
		}

		e.playMove(m)
		playedMoves++

		var value Value
		if pvNode && playedMoves == 1 {
			value = -e.negaMax(-beta, -alpha, depth-1, ply+1, false, PV)
		} else {
			reducedDepth := depth - 1
			doReduce := !inCheck && depth >= 3 && playedMoves > 1+2*btoi(pvNode)
			if doReduce {
				r := int(lmrTable[clampIdx(depth)][clampIdx(playedMoves+1)])
				if !improving {
					r++
				}
				if pvNode {
					r--
				}
				rd := Clamp(depth-r, 1, depth+1)
				value = -e.negaMax(-alpha-1, -alpha, rd, ply+1, true, NonPV)
				if value > alpha && rd < depth {
					value = -e.negaMax(-alpha-1, -alpha, reducedDepth, ply+1, !cutNode, NonPV)
				}
			} else {
				value = -e.negaMax(-alpha-1, -alpha, reducedDepth, ply+1, !cutNode, NonPV)
			}
			if pvNode && value > alpha {
				value = -e.negaMax(-beta, -alpha, depth-1, ply+1, false, PV)
			}
		}
		e.cancelMove()

		if e.stopRequested() {
			return e.drawValue()
		}

		if nt == Root {
			for idx := range e.rootMoves {
				if e.rootMoves[idx].Move == m {
					e.rootMoves[idx].Score = value
					break
				}
			}
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				updatePV(ss, e.ss4(ply+1), ply, m)
				if alpha >= beta {
					e.cutStats.BetaCutoffs++
					break
				}
			}
		}
	}

	if bestMove != NoMove && e.pos.IsQuiet(bestMove) {
		bonusDepth := depth
		if bestValue > beta+150 {
			bonusDepth = depth + 1
		}
		bonus := statBonus(bonusDepth)
		e.History.Update(e.pos.SideToMove(), bestMove.From(), bestMove.To(), bonus)
		if bestMove != ss.Killers[0] {
			ss.Killers[1] = ss.Killers[0]
			ss.Killers[0] = bestMove
		}
	}

	flag := Upper
	switch {
	case bestValue >= beta:
		flag = Lower
	case pvNode && bestMove != NoMove:
		flag = Exact
	}
	e.TT.Store(key, flag, int8(depth), bestMove, int16(bestValue), int16(ss.StaticEval))

	return bestValue
}

// nextBestRootMove mirrors NextBestMove but selects over rootMoves by their
// previous iteration's score, which is how an in-progress iteration's
// not-yet-searched moves stay ordered by the last complete iteration's
// result instead of this iteration's still-unknown one.
func nextBestRootMove(rootMoves []RootMove, i int) gm.Move {
	best := i
	for j := i + 1; j < len(rootMoves); j++ {
		if rootMoves[j].PrevScore > rootMoves[best].PrevScore {
			best = j
		}
	}
	rootMoves[i], rootMoves[best] = rootMoves[best], rootMoves[i]
	return rootMoves[i].Move
}

func clampIdx(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
