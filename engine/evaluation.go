package engine

import (
	b "chess-minimax/board"
)

// Material values indexed by piece type. The king carries no material; mate
// is scored by the search.
var PieceValue = [7]int{
	b.PieceTypePawn:   100,
	b.PieceTypeKnight: 350,
	b.PieceTypeBishop: 350,
	b.PieceTypeRook:   525,
	b.PieceTypeQueen:  1000,
	b.PieceTypeKing:   0,
}

// Piece-square tables from white's point of view, a1 first. Black reads
// them through FlipView.
var PSQT = [7][64]int{
	b.PieceTypeKnight: {
		-24, -28, -46, -30, -25, -21, -27, -40,
		-35, -32, -18, -10, -14, -12, -20, -18,
		-25, -8, -4, 6, 7, -1, -1, -17,
		-14, -1, 8, 5, 13, 10, 26, -1,
		-5, 8, 30, 35, 24, 43, 19, 22,
		-21, 12, 40, 49, 67, 64, 37, 14,
		-17, -12, 20, 33, 33, 37, -8, 3,
		-61, -6, -12, -2, 1, -6, -1, -16,
	},
	b.PieceTypeBishop: {
		4, -2, -15, -21, -18, -8, -8, 2,
		4, 8, 11, -2, 1, 5, 20, 11,
		-2, 11, 8, 13, 10, 8, 10, 13,
		-7, 10, 15, 21, 26, 11, 10, 7,
		-4, 22, 24, 49, 34, 37, 20, 6,
		4, 18, 36, 36, 47, 55, 37, 24,
		-22, 6, 3, -7, 4, 14, -3, 8,
		-27, -8, -13, -12, -8, -21, 1, -10,
	},
}

// FlipView mirrors a square across the middle of the board (a1 <-> a8).
func FlipView(sq b.Square) b.Square { return sq ^ 56 }

var positionalTypes = [...]b.PieceType{b.PieceTypeKnight, b.PieceTypeBishop}

// Evaluate scores pos from white's point of view: material, plus knight and
// bishop placement when usePST is set.
func Evaluate(pos *b.Position, usePST bool) int {
	score := 0
	for pt := b.PieceTypePawn; pt <= b.PieceTypeKing; pt++ {
		score += PieceValue[pt] * (pos.Pieces(b.White, pt).Count() - pos.Pieces(b.Black, pt).Count())
	}
	if !usePST {
		return score
	}
	for _, pt := range positionalTypes {
		for bb := pos.Pieces(b.White, pt); bb != 0; {
			score += PSQT[pt][bb.PopLSB()]
		}
		for bb := pos.Pieces(b.Black, pt); bb != 0; {
			score -= PSQT[pt][FlipView(bb.PopLSB())]
		}
	}
	return score
}

// sideSign is +1 for White and -1 for Black.
func sideSign(c b.Color) int {
	if c == b.White {
		return 1
	}
	return -1
}
