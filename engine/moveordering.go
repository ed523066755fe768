package engine

import (
	b "chess-minimax/board"
)

type scoredMove struct {
	move  b.Move
	score uint16
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// Promotions first, then captures, then quiet moves in generator order.
const (
	promotionOffset uint16 = 20000
	captureOffset   uint16 = 15000
)

func scoreMoves(moves []b.Move, dst []scoredMove) []scoredMove {
	dst = dst[:0]
	for _, m := range moves {
		var score uint16
		switch {
		case m.Kind == b.KindNormal && m.Promotion != b.NoPiece:
			score = promotionOffset + uint16(PieceValue[m.Promotion.Type()])
		case m.IsCapture():
			score = captureOffset + mvvLva[m.Captured.Type()][m.Piece.Type()]
		}
		dst = append(dst, scoredMove{move: m, score: score})
	}
	return dst
}

// orderNextMove swaps the best remaining move into index i. Ties keep the
// earlier move.
func orderNextMove(i int, moves []scoredMove) {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if moves[j].score > moves[best].score {
			best = j
		}
	}
	moves[i], moves[best] = moves[best], moves[i]
}
