package engine_test

import (
	"testing"

	"github.com/oliverans/goosesearch/engine"
	gm "github.com/oliverans/goosesearch/goosemg"
)

func TestScoreMovesRanksTTMoveHighest(t *testing.T) {
	board, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	pos := engine.NewPosition(*board)
	moves := pos.Moves()
	if len(moves) < 2 {
		t.Fatal("expected multiple legal moves at startpos")
	}

	ttMove := moves[len(moves)-1]
	scores := make([]int32, len(moves))
	var history engine.HistoryTable
	engine.ScoreMoves(&pos, moves, scores, ttMove, [2]gm.Move{}, &history)

	best := engine.NextBestMove(moves, scores, 0)
	if best != ttMove {
		t.Errorf("expected the TT move %s to sort first, got %s", ttMove, best)
	}
}

func TestNextBestMoveSortsDescending(t *testing.T) {
	moves := []gm.Move{1, 2, 3}
	scores := []int32{5, 50, 10}

	for i := 0; i < len(moves); i++ {
		engine.NextBestMove(moves, scores, i)
	}

	if scores[0] < scores[1] || scores[1] < scores[2] {
		t.Errorf("scores not sorted descending: %v", scores)
	}
}
