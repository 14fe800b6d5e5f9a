package engine

// checkDrawNonRoot implements C4 at a non-root negamax node: fifty-move
// rule first, then two-fold repetition against both posStack and the
// external seenPositions history. Must not be called at ply 0.
func (e *Engine) checkDrawNonRoot() (Value, bool) {
	if e.pos.HalfMoveClock() >= 100 {
		return e.drawValue(), true
	}
	if e.isTwoFoldRepetition() {
		return e.drawValue(), true
	}
	return 0, false
}

func (e *Engine) isTwoFoldRepetition() bool {
	if e.pos.HalfMoveClock() < 4 {
		return false
	}
	key := e.pos.Key()
	for i := e.ply - 2; i >= 0; i -= 2 {
		if e.posStack[i].Key() == key {
			return true
		}
	}
	if n := len(e.seenPositions); n > 1 {
		for i := 0; i <= n-2; i++ {
			if e.seenPositions[i] == key {
				return true
			}
		}
	}
	return false
}

// drawValue jitters VALUE_DRAW by {-1,0,1} keyed on node count so the
// engine has a tiny preference for progressing lines over pure repetition,
// rather than treating every drawn continuation as perfectly equal.
func (e *Engine) drawValue() Value {
	return Value(int(e.nodesSearched%3) - 1)
}
