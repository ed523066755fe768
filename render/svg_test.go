package render

import (
	"bytes"
	"strings"
	"testing"

	"chess-minimax/board"
	"chess-minimax/testutil"
)

func TestSVGStartPosition(t *testing.T) {
	pos := board.StartPosition()
	var buf bytes.Buffer
	SVG(&buf, &pos, 0, Options{})
	out := buf.String()
	testutil.AssertContains(t, out, "<svg")
	testutil.AssertContains(t, out, "</svg>")
	testutil.AssertEqual(t, strings.Count(out, "<rect"), 64)
	testutil.AssertEqual(t, strings.Count(out, "<text"), 32)
	testutil.AssertEqual(t, strings.Count(out, "♔"), 1)
	testutil.AssertEqual(t, strings.Count(out, "♟"), 8)
}

func TestSVGHighlightAndSize(t *testing.T) {
	pos := board.NewPosition()
	var buf bytes.Buffer
	marked := board.SquareBB(board.E1) | board.SquareBB(board.G1)
	SVG(&buf, &pos, marked, Options{SquareSize: 10, Highlight: "#ff0000"})
	out := buf.String()
	testutil.AssertEqual(t, strings.Count(out, "#ff0000"), 2)
	testutil.AssertContains(t, out, `width="80"`)
	testutil.AssertEqual(t, strings.Count(out, "<text"), 0)
}
