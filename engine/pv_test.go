package engine_test

import (
	"testing"

	"github.com/oliverans/goosesearch/engine"
	gm "github.com/oliverans/goosesearch/goosemg"
)

// TestPVMovesAreLegalFromRoot plays the reported best move and confirms it
// is a member of the root position's legal move list, the minimal form of
// PV validity a single bestmove exposes from outside the package.
func TestPVMovesAreLegalFromRoot(t *testing.T) {
	board, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	root := engine.NewPosition(*board)

	e := engine.NewEngine()
	e.SetPosition(engine.NewPosition(*board), nil)
	best := e.StartSearch(engine.SearchLimits{Depth: 5, HasAny: true})

	if !root.IsLegal(best) {
		t.Fatalf("bestmove %s is not a legal root move", best)
	}
}

// TestSearchDeterministicOnFreshEngine confirms two independent Engine
// values searching the same position to the same depth agree, guarding
// against accidental state leaking from package-level globals.
func TestSearchDeterministicOnFreshEngine(t *testing.T) {
	board, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	e1 := engine.NewEngine()
	e1.SetPosition(engine.NewPosition(*board), nil)
	best1 := e1.StartSearch(engine.SearchLimits{Depth: 5, HasAny: true})

	e2 := engine.NewEngine()
	e2.SetPosition(engine.NewPosition(*board), nil)
	best2 := e2.StartSearch(engine.SearchLimits{Depth: 5, HasAny: true})

	if best1 != best2 {
		t.Errorf("independent engines disagree on bestmove at the same depth: %s vs %s", best1, best2)
	}
}
