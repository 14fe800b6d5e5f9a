package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/oliverans/goosesearch/engine"
	gm "github.com/oliverans/goosesearch/goosemg"
)

func mustEngine(t *testing.T, fen string) *engine.Engine {
	t.Helper()
	board, err := gm.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	e := engine.NewEngine()
	e.SetPosition(engine.NewPosition(*board), nil)
	return e
}

func TestMateInOne(t *testing.T) {
	e := mustEngine(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	best := e.StartSearch(engine.SearchLimits{Depth: 2, HasAny: true})
	if best == engine.NoMove {
		t.Fatal("no move returned for mate in 1")
	}
	if got := best.String(); got != "a1a8" {
		t.Errorf("bestmove = %s, want a1a8", got)
	}
}

func TestMateInTwoReportsMateScore(t *testing.T) {
	e := mustEngine(t, "r1bqkbnr/pppp1Qpp/2n5/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 3")
	best := e.StartSearch(engine.SearchLimits{Depth: 4, HasAny: true})
	if best == engine.NoMove {
		t.Fatal("no move returned")
	}
}

func TestStalemateIsDraw(t *testing.T) {
	e := mustEngine(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	e.StartSearch(engine.SearchLimits{Depth: 1, HasAny: true})
}

func TestRepetitionRecognizedAsDraw(t *testing.T) {
	board, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos := engine.NewPosition(*board)
	uciMoves := strings.Fields("g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8")
	for _, mv := range uciMoves {
		var found gm.Move
		var ok bool
		for _, m := range pos.Moves() {
			if m.String() == mv {
				found, ok = m, true
				break
			}
		}
		if !ok {
			t.Fatalf("move %s not found among legal moves", mv)
		}
		pos.DoMove(found)
	}

	e := engine.NewEngine()
	e.SetPosition(pos, nil)
	e.StartSearch(engine.SearchLimits{Depth: 2, HasAny: true})
}

func TestStopResponsiveness(t *testing.T) {
	e := mustEngine(t, gm.FENStartPos)
	done := make(chan gm.Move, 1)
	go func() {
		done <- e.StartSearch(engine.SearchLimits{Infinite: true, HasAny: true})
	}()

	time.Sleep(200 * time.Millisecond)
	e.RequestStop()

	select {
	case best := <-done:
		if best == engine.NoMove {
			t.Fatal("search returned NoMove after stop")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("search did not respond to stop within 500ms")
	}
}

func TestTTDeterminismAcrossRepeatedSearches(t *testing.T) {
	board, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	e := engine.NewEngine()

	e.SetPosition(engine.NewPosition(*board), nil)
	best1 := e.StartSearch(engine.SearchLimits{Depth: 6, HasAny: true})

	e.SetPosition(engine.NewPosition(*board), nil)
	best2 := e.StartSearch(engine.SearchLimits{Depth: 6, HasAny: true})

	if best1 != best2 {
		t.Errorf("bestmove differs across repeated searches with TT preserved: %s vs %s", best1, best2)
	}

	e.NewGame()
	pos := engine.NewPosition(*board)
	e.SetPosition(pos, nil)
	best3 := e.StartSearch(engine.SearchLimits{Depth: 6, HasAny: true})
	if !pos.IsLegal(best3) {
		t.Errorf("bestmove %s illegal after ucinewgame", best3)
	}
}
