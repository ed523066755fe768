package uci

import (
	"bytes"
	"strings"
	"testing"

	"chess-minimax/board"
	"chess-minimax/config"
	"chess-minimax/testutil"
)

func run(t *testing.T, input string) (string, *Session) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(&out, config.NewConfig(), nil)
	testutil.AssertNoError(t, s.Run(strings.NewReader(input)))
	return out.String(), s
}

func TestHandshake(t *testing.T) {
	out, _ := run(t, "uci\nisready\nquit\n")
	testutil.AssertContains(t, out, "id name "+EngineName)
	testutil.AssertContains(t, out, "option name Depth type spin default 4 min 1 max 8")
	testutil.AssertContains(t, out, "uciok\nreadyok\n")
}

func TestPositionWithMoves(t *testing.T) {
	_, s := run(t, "position startpos moves e2e4 e7e5 g1f3\n")
	testutil.AssertEqual(t, s.Game().FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1")

	_, s = run(t, "position fen 4k3/8/8/8/8/8/8/4K2R w K - 0 1 moves e1g1\n")
	testutil.AssertEqual(t, s.Game().Pos.Text(), "4k3/8/8/8/8/8/8/5RK1")
}

func TestMalformedInputKeepsSession(t *testing.T) {
	out, s := run(t, strings.Join([]string{
		"position startpos moves e2e4",
		"position startpos moves e2e5",
		"position fen 8/8/8 w - - 0 1",
		"position sideways",
		"go depth x",
		"perft",
		"setoption name Depth value 99",
		"frobnicate",
		"",
	}, "\n"))
	testutil.AssertContains(t, out, "info string Move e2e5 rejected")
	testutil.AssertContains(t, out, "info string Invalid fen position")
	testutil.AssertContains(t, out, "info string Invalid position subcommand")
	testutil.AssertContains(t, out, "info string Malformed go command option; could not convert depth")
	testutil.AssertContains(t, out, "info string Malformed perft command")
	testutil.AssertContains(t, out, "info string invalid configuration")
	testutil.AssertContains(t, out, "info string Unknown command frobnicate")
	testutil.AssertEqual(t, s.Game().Pos.Get(board.NewSquare(4, 3)), board.WhitePawn)
}

func TestGoFindsMate(t *testing.T) {
	out, _ := run(t, "position fen 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1\ngo depth 2\n")
	testutil.AssertContains(t, out, "score mate 1")
	testutil.AssertContains(t, out, "bestmove a1a8\n")
}

func TestGoWithoutLegalMoves(t *testing.T) {
	out, _ := run(t, "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\ngo depth 2\n")
	testutil.AssertContains(t, out, "bestmove 0000\n")
}

func TestPositionRejectsCapturableKing(t *testing.T) {
	out, s := run(t, "position fen 4k3/8/8/8/8/8/8/4R1K1 w - - 0 1\ngo depth 2\nperft 2\n")
	testutil.AssertContains(t, out, "info string Invalid fen position")
	testutil.AssertContains(t, out, "bestmove ")
	testutil.AssertContains(t, out, "Total: 400\n")
	testutil.AssertEqual(t, s.Game().FEN(), board.FENStartPos)
}

func TestGoUsesConfiguredDepth(t *testing.T) {
	out, _ := run(t, "setoption name Depth value 1\ngo wtime 1000 btime 1000\n")
	testutil.AssertContains(t, out, "info depth 1 ")
	testutil.AssertContains(t, out, "bestmove ")
}

func TestPerftDivide(t *testing.T) {
	out, _ := run(t, "position fen r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\nperft 1\n")
	testutil.AssertContains(t, out, "a1a2: 1\n")
	testutil.AssertContains(t, out, "e1g1: 1\n")
	testutil.AssertContains(t, out, "Total: 26\n")
}

func TestDisplayAndEval(t *testing.T) {
	out, _ := run(t, "d\nsetoption name PieceSquareTables value false\neval\n")
	testutil.AssertContains(t, out, board.StartText+"\n")
	testutil.AssertContains(t, out, "fen "+board.FENStartPos)
	testutil.AssertContains(t, out, "info string eval 0\n")
}
