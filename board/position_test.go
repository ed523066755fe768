package board_test

import (
	"math/rand"
	"testing"

	"chess-minimax/board"
	"chess-minimax/testutil"
)

func square(alg string) board.Square {
	sq, err := board.ParseSquare(alg)
	if err != nil {
		panic(err)
	}
	return sq
}

func mustFEN(t testing.TB, fen string) *board.Game {
	t.Helper()
	g, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return g
}

func TestStartPositionText(t *testing.T) {
	pos := board.StartPosition()
	testutil.AssertEqual(t, pos.Text(), board.StartText)
	testutil.AssertNoError(t, pos.Validate())

	pos.Set(square("e2"), board.NoPiece)
	pos.Set(square("e4"), board.WhitePawn)
	testutil.AssertEqual(t, pos.Text(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
}

func TestGetReadsEveryPiece(t *testing.T) {
	pos := board.StartPosition()
	cases := map[string]board.Piece{
		"a1": board.WhiteRook, "b1": board.WhiteKnight, "c1": board.WhiteBishop,
		"d1": board.WhiteQueen, "e1": board.WhiteKing, "h2": board.WhitePawn,
		"a8": board.BlackRook, "g8": board.BlackKnight, "f8": board.BlackBishop,
		"d8": board.BlackQueen, "e8": board.BlackKing, "c7": board.BlackPawn,
		"e4": board.NoPiece,
	}
	for alg, want := range cases {
		if got := pos.Get(square(alg)); got != want {
			t.Errorf("Get(%s): got %v want %v", alg, got, want)
		}
	}
}

func TestSetKeepsOccupancyInvariant(t *testing.T) {
	pieces := []board.Piece{
		board.NoPiece,
		board.WhitePawn, board.WhiteKnight, board.WhiteBishop, board.WhiteRook, board.WhiteQueen, board.WhiteKing,
		board.BlackPawn, board.BlackKnight, board.BlackBishop, board.BlackRook, board.BlackQueen, board.BlackKing,
	}
	rng := rand.New(rand.NewSource(7))
	pos := board.NewPosition()
	for i := 0; i < 5000; i++ {
		sq := board.Square(rng.Intn(64))
		pc := pieces[rng.Intn(len(pieces))]
		pos.Set(sq, pc)
		if got := pos.Get(sq); got != pc {
			t.Fatalf("step %d: Get(%v) = %v after Set %v", i, sq, got, pc)
		}
		if err := pos.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Set(64) did not panic")
		}
	}()
	pos := board.NewPosition()
	pos.Set(64, board.WhitePawn)
}
