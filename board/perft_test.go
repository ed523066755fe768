package board_test

import (
	"testing"

	"chess-minimax/board"
)

func TestPerftInitialPosition(t *testing.T) {
	g := board.NewGame()
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, n := range want {
		if depth == 4 && testing.Short() {
			t.Skip("perft depth 4 skipped in short mode")
		}
		if got := board.Perft(g, depth); got != n {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, n)
		}
	}
	if g.FEN() != board.FENStartPos {
		t.Fatalf("perft left the game modified: %s", g.FEN())
	}
}

func TestPerftReferencePositions(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"castling d1", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 1, 26},
		{"castling d2", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 2, 568},
		{"castling d3", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 3, 13744},
		{"short castle only", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", 1, 15},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"rook endgame d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"rook endgame d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
	}
	for _, c := range cases {
		g := mustFEN(t, c.fen)
		if got := board.Perft(g, c.depth); got != c.nodes {
			t.Errorf("%s: perft depth%d: got %d want %d", c.name, c.depth, got, c.nodes)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	g := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	div := board.PerftDivide(g, 2)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 568 {
		t.Fatalf("divide total: got %d want %d", sum, 568)
	}
	if len(div) != 26 {
		t.Fatalf("divide moves: got %d want %d", len(div), 26)
	}
	if div["e1g1"] == 0 || div["e1c1"] == 0 {
		t.Fatalf("divide missing castles: %v", div)
	}
}

func TestPerftStopsAtCapturedKing(t *testing.T) {
	pos, err := board.ParseBoardText("4k3/8/8/8/8/8/8/4R1K1")
	if err != nil {
		t.Fatal(err)
	}
	g := &board.Game{Pos: pos, Side: board.White}
	div := board.PerftDivide(g, 2)
	if n, ok := div["e1e8"]; !ok || n != 0 {
		t.Fatalf("e1e8 subtree: got %d (present %v) want 0", n, ok)
	}
	if got, want := board.Perft(g, 1), uint64(len(g.LegalMoves())); got != want {
		t.Fatalf("perft depth1: got %d want %d", got, want)
	}

	noKing := &board.Game{Pos: pos, Side: board.White}
	noKing.Pos.Set(board.NewSquare(6, 0), board.NoPiece)
	if got := board.Perft(noKing, 3); got != 0 {
		t.Fatalf("perft without king: got %d want 0", got)
	}
	if got := board.PerftDivide(noKing, 2); len(got) != 0 {
		t.Fatalf("divide without king: got %v", got)
	}
}
