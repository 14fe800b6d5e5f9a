package engine

import (
	"sync/atomic"

	gm "github.com/oliverans/goosesearch/goosemg"
)

// NoMove is the sentinel "no move" value (goosemg never generates a1a1).
const NoMove gm.Move = 0

// RootMove is one legal root move together with its most recent iteration's
// score, the unit rootMoves re-sorts between iterative-deepening passes.
type RootMove struct {
	Move  gm.Move
	Score Value // this iteration's result, written as each move is searched
	// PrevScore is the last fully completed iteration's score, used to
	// order not-yet-searched moves within the current (possibly aborted)
	// iteration instead of biasing on its own incomplete results.
	PrevScore Value
}

// SearchLimits mirrors the UCI "go" parameters relevant to the search core.
type SearchLimits struct {
	Depth     int
	Nodes     uint64
	WTime     int
	BTime     int
	WInc      int
	BInc      int
	MoveTime  int
	Infinite  bool
	HasAny    bool
}

// Engine owns every piece of mutable state the search touches: the
// transposition table, history, the search/position stacks and root-level
// bookkeeping. Previous iterations of this engine kept these as package
// globals; bundling them into one value lets a driver run (or reset) more
// than one independent search without cross-talk, per the single-worker
// model of the spec's concurrency section.
type Engine struct {
	TT      TransTable
	History HistoryTable
	Eval    Evaluator

	pos Position

	posStack [MaxPly]Position
	ss       [MaxPly + 4]SearchInfo

	rootMoves []RootMove
	rootColor gm.Color

	ply           int
	nodesSearched uint64
	selDepth      int
	rootDepth     int

	// seenPositions holds the Zobrist keys of positions prior to this
	// search's root (from "position ... moves ..."), consulted by
	// two-fold repetition detection alongside posStack.
	seenPositions []uint64

	limits    SearchLimits
	clock     clock
	deadline  timeDeadline
	stopState int32 // atomic: StateIdle/StateRunning/StateStopPending

	lastBestMove  gm.Move
	lastScore     Value
	searchStable  int

	cutStats CutStatistics

	// PrintCutStats controls whether StartSearch dumps cutoff counters once
	// the search finishes. Off by default; toggled by a debug UCI command.
	PrintCutStats bool
}

// NewEngine returns an Engine with a default-sized TT and the classical
// tapered evaluator wired in as Eval.
func NewEngine() *Engine {
	e := &Engine{Eval: classicalEvaluator{}}
	e.TT.Resize(16)
	return e
}

// SetPosition installs pos as the current root and records priorKeys (the
// Zobrist history of the game up to but not including pos) for repetition
// detection.
func (e *Engine) SetPosition(pos Position, priorKeys []uint64) {
	e.pos = pos
	e.seenPositions = append(e.seenPositions[:0], priorKeys...)
}

// NewGame clears the TT and decays (rather than zeroes) history state that
// should not leak strength between otherwise-unrelated games.
func (e *Engine) NewGame() {
	e.TT.Clear()
	e.History.Decay()
}

func (e *Engine) ss4(ply int) *SearchInfo { return &e.ss[ply+4] }

func (e *Engine) loadStopState() int32 { return atomic.LoadInt32(&e.stopState) }
func (e *Engine) setStopState(v int32) { atomic.StoreInt32(&e.stopState, v) }
