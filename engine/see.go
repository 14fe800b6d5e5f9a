package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
	gm "github.com/oliverans/goosesearch/goosemg"
)

// SeePieceValue is the material scale the static-exchange evaluator swaps
// pieces off against. It intentionally differs from the tapered
// middlegame/endgame evaluation tables — SEE only needs a rough material
// ordering, and a king must outweigh every possible exchange so the swap-off
// loop never prices "capturing" a king into a position.
var SeePieceValue = [7]int{
	gm.PieceTypeNone:   0,
	gm.PieceTypePawn:   100,
	gm.PieceTypeKnight: 320,
	gm.PieceTypeBishop: 330,
	gm.PieceTypeRook:   500,
	gm.PieceTypeQueen:  900,
	gm.PieceTypeKing:   20000,
}

func sqBit(sq int) uint64 { return uint64(1) << uint(sq) }

// pawnAttackersTo returns the squares from which a pawn of side would attack
// sq (i.e. the squares a defending/attacking pawn of that color must stand
// on to capture onto sq).
func pawnAttackersTo(sq int, side gm.Color) uint64 {
	file, rank := sq%8, sq/8
	var out uint64
	srcRank := rank - 1
	if side == gm.Black {
		srcRank = rank + 1
	}
	if srcRank < 0 || srcRank > 7 {
		return 0
	}
	if file-1 >= 0 {
		out |= sqBit(srcRank*8 + file - 1)
	}
	if file+1 <= 7 {
		out |= sqBit(srcRank*8 + file + 1)
	}
	return out
}

// leastValuableAttacker finds the cheapest piece of side that attacks sq
// given the (shrinking) occupancy occ, recomputing slider attacks against
// occ each call so that x-ray attacks revealed by previously removed pieces
// are picked up.
func leastValuableAttacker(b *gm.Board, occ uint64, sq int, side gm.Color) (attackerSq int, piece gm.Piece, ok bool) {
	bbs := b.Bitboards(side)

	if pawns := pawnAttackersTo(sq, side) & occ & bbs.Pawns; pawns != 0 {
		return bits.TrailingZeros64(pawns), gm.PieceFromType(side, gm.PieceTypePawn), true
	}
	if knights := KnightMasks[sq] & occ & bbs.Knights; knights != 0 {
		return bits.TrailingZeros64(knights), gm.PieceFromType(side, gm.PieceTypeKnight), true
	}
	bishopAtk := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
	if bishops := bishopAtk & occ & bbs.Bishops; bishops != 0 {
		return bits.TrailingZeros64(bishops), gm.PieceFromType(side, gm.PieceTypeBishop), true
	}
	rookAtk := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
	if rooks := rookAtk & occ & bbs.Rooks; rooks != 0 {
		return bits.TrailingZeros64(rooks), gm.PieceFromType(side, gm.PieceTypeRook), true
	}
	if queens := (bishopAtk | rookAtk) & occ & bbs.Queens; queens != 0 {
		return bits.TrailingZeros64(queens), gm.PieceFromType(side, gm.PieceTypeQueen), true
	}
	if kings := KingMoves[sq] & occ & bbs.Kings; kings != 0 {
		return bits.TrailingZeros64(kings), gm.PieceFromType(side, gm.PieceTypeKing), true
	}
	return 0, gm.NoPiece, false
}

// see estimates the material outcome of playing m to the end of the capture
// sequence on its destination square, via the classic gain-array swap-off.
// Positive favors the side to move.
func see(b *gm.Board, m gm.Move) int {
	from, to := int(m.From()), int(m.To())
	us := b.SideToMove()
	them := 1 - us

	occ := b.AllOccupancy()

	var captured gm.Piece
	if m.Flags()&gm.FlagEnPassant != 0 {
		capSq := to - 8
		if us == gm.Black {
			capSq = to + 8
		}
		captured = gm.PieceFromType(them, gm.PieceTypePawn)
		occ &^= sqBit(capSq)
	} else {
		captured = m.CapturedPiece()
	}

	gain := make([]int, 1, 32)
	gain[0] = SeePieceValue[captured.Type()]
	curValue := SeePieceValue[m.MovedPiece().Type()]
	if promo := m.PromotionPieceType(); promo != gm.PieceTypeNone {
		gain[0] += SeePieceValue[promo] - SeePieceValue[gm.PieceTypePawn]
		curValue = SeePieceValue[promo]
	}

	occ &^= sqBit(from)
	side := them
	for {
		attackerSq, piece, ok := leastValuableAttacker(b, occ, to, side)
		if !ok {
			break
		}
		gain = append(gain, curValue-gain[len(gain)-1])
		occ &^= sqBit(attackerSq)
		curValue = SeePieceValue[piece.Type()]
		side = 1 - side
	}

	for i := len(gain) - 1; i > 0; i-- {
		gain[i-1] = -Max(-gain[i-1], gain[i])
	}
	return gain[0]
}
