package engine

import (
	"time"

	gm "github.com/oliverans/goosesearch/goosemg"
)

// searchState tri-state: the only variable the UCI thread and the search
// worker share. Ordering required is only that a stop request eventually
// becomes visible to the worker, so plain atomic load/store (no channel,
// no mutex) is sufficient.
const (
	StateIdle int32 = iota
	StateRunning
	StateStopPending
)

type clock struct {
	start time.Time
}

type timeDeadline struct {
	limit time.Duration
	timed bool
}

func (e *Engine) startClock() { e.clock.start = time.Now() }

func (e *Engine) elapsed() time.Duration { return time.Since(e.clock.start) }

// computeDeadline derives the search's time budget from limits, per C8:
// (0.7 + 0.1*hasIncrement) * time[rootColor] - 10ms. movetime and untimed
// (infinite/depth/nodes-only) searches bypass the formula entirely.
func (e *Engine) computeDeadline() {
	l := e.limits
	switch {
	case l.MoveTime > 0:
		e.deadline = timeDeadline{limit: time.Duration(l.MoveTime) * time.Millisecond, timed: true}
	case l.Infinite, !l.HasAny:
		e.deadline = timeDeadline{timed: false}
	default:
		t, inc := l.WTime, l.WInc
		if e.rootColor == gm.Black {
			t, inc = l.BTime, l.BInc
		}
		if t <= 0 {
			e.deadline = timeDeadline{timed: false}
			return
		}
		hasInc := 0.0
		if inc > 0 {
			hasInc = 1.0
		}
		budgetMs := (0.7+0.1*hasInc)*float64(t) - 10
		if budgetMs < 1 {
			budgetMs = 1
		}
		e.deadline = timeDeadline{limit: time.Duration(budgetMs) * time.Millisecond, timed: true}
	}
}

// checkTime is polled every 32768 nodes from playMove/playNullMove. A no-op
// when the search is untimed.
func (e *Engine) checkTime() {
	if !e.deadline.timed {
		return
	}
	if e.elapsed() >= e.deadline.limit {
		e.setStopState(StateStopPending)
	}
}

func (e *Engine) stopRequested() bool { return e.loadStopState() == StateStopPending }

// RequestStop is called from the UCI command loop (a different goroutine
// than the one running the search) to cooperatively cancel it.
func (e *Engine) RequestStop() { e.setStopState(StateStopPending) }
