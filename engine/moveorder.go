package engine

import (
	"math"

	gm "github.com/oliverans/goosesearch/goosemg"
)

const ttMoveScore int32 = math.MaxInt32

// ScoreMoves assigns each move in moves a score into the parallel scores
// slice, per the move-ordering formula: the TT move always sorts first;
// quiet moves score off history plus killer bonuses; captures score MVV
// (no LVA); castling and en passant get flat bonuses; promotions score the
// promoted piece's value plus anything captured. A move only earns one of
// the quiet/capture bonuses — never both — since scoreMove's switch puts
// each move in exactly one category.
func ScoreMoves(pos *Position, moves []gm.Move, scores []int32, ttMove gm.Move, killers [2]gm.Move, history *HistoryTable) {
	us := pos.SideToMove()
	for i, m := range moves {
		scores[i] = scoreMove(m, us, ttMove, killers, history)
	}
}

func scoreMove(m gm.Move, us gm.Color, ttMove gm.Move, killers [2]gm.Move, history *HistoryTable) int32 {
	if m == ttMove {
		return ttMoveScore
	}

	flags := m.Flags()
	switch {
	case flags&gm.FlagCastle != 0:
		return 50
	case flags&gm.FlagEnPassant != 0:
		return 70
	case m.PromotionPieceType() != gm.PieceTypeNone:
		score := int32(SeePieceValue[m.PromotionPieceType()])
		if captured := m.CapturedPiece(); captured != gm.NoPiece {
			score += int32(SeePieceValue[captured.Type()])
		}
		return score
	case m.CapturedPiece() != gm.NoPiece:
		return int32(SeePieceValue[m.CapturedPiece().Type()])
	default:
		score := int32(history.Get(us, m.From(), m.To())) / 200
		switch m {
		case killers[0]:
			score += 40
		case killers[1]:
			score += 20
		}
		return score
	}
}

// NextBestMove performs one linear selection-sort pass over moves[i:],
// swapping the best-scoring candidate into position i and returning it.
// O(n^2) total across a full move list, which is fine here: n is small and
// beta cutoffs usually consume only a prefix.
func NextBestMove(moves []gm.Move, scores []int32, i int) gm.Move {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	moves[i], moves[best] = moves[best], moves[i]
	scores[i], scores[best] = scores[best], scores[i]
	return moves[i]
}
