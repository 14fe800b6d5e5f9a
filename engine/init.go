package engine

import "math"

// KingMoves[sq] is the king attack bitboard for each square, plus a zero
// sentinel at index 64 for NoSquare lookups.
var KingMoves [65]uint64

func init() {
	initPositionBB()
	initLMRTable()
}

func initPositionBB() {
	for i := 0; i <= 64; i++ {
		PositionBB[i] = uint64(1) << uint(i)
		sqBB := PositionBB[i]

		top := sqBB >> 8
		topRight := (sqBB >> 8 >> 1) & ^bitboardFileH
		topLeft := (sqBB >> 8 << 1) & ^bitboardFileA

		right := (sqBB >> 1) & ^bitboardFileH
		left := (sqBB << 1) & ^bitboardFileA

		bottom := sqBB << 8
		bottomRight := (sqBB << 8 >> 1) & ^bitboardFileH
		bottomLeft := (sqBB << 8 << 1) & ^bitboardFileA

		KingMoves[i] = top | topRight | topLeft | right | left | bottom | bottomRight | bottomLeft
	}
}

// lmrTable[depth][moveIndex] = floor(0.75 + ln(depth)*ln(moveIndex)/2.25),
// with row/column 0 pinned to zero so shallow depths and early moves are
// never reduced.
var lmrTable [MaxPly + 1][256]int8

func initLMRTable() {
	for depth := 1; depth <= MaxPly; depth++ {
		for moveIndex := 1; moveIndex < 256; moveIndex++ {
			r := 0.75 + math.Log(float64(depth))*math.Log(float64(moveIndex))/2.25
			if r < 0 {
				r = 0
			}
			lmrTable[depth][moveIndex] = int8(r)
		}
	}
}
