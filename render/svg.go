// Package render draws positions as SVG diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-minimax/board"
)

// Options control the diagram. Zero values take defaults.
type Options struct {
	SquareSize int
	Light      string
	Dark       string
	Highlight  string
	// Flip draws the board from black's side.
	Flip bool
}

func (o Options) withDefaults() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = 48
	}
	if o.Light == "" {
		o.Light = "#f0d9b5"
	}
	if o.Dark == "" {
		o.Dark = "#b58863"
	}
	if o.Highlight == "" {
		o.Highlight = "#cdd26a"
	}
	return o
}

var glyphs = map[board.Piece]string{
	board.WhiteKing: "♔", board.WhiteQueen: "♕", board.WhiteRook: "♖",
	board.WhiteBishop: "♗", board.WhiteKnight: "♘", board.WhitePawn: "♙",
	board.BlackKing: "♚", board.BlackQueen: "♛", board.BlackRook: "♜",
	board.BlackBishop: "♝", board.BlackKnight: "♞", board.BlackPawn: "♟",
}

// SVG writes pos to w, shading the squares in marked (for example the last
// move's origin and destination).
func SVG(w io.Writer, pos *board.Position, marked board.Bitboard, opts Options) {
	o := opts.withDefaults()
	size := o.SquareSize
	canvas := svg.New(w)
	canvas.Start(8*size, 8*size)
	for sq := board.Square(0); sq < 64; sq++ {
		col, row := sq.File(), 7-sq.Rank()
		if o.Flip {
			col, row = 7-col, 7-row
		}
		x, y := col*size, row*size
		fill := o.Light
		if (sq.File()+sq.Rank())%2 == 0 {
			fill = o.Dark
		}
		if marked.Has(sq) {
			fill = o.Highlight
		}
		canvas.Rect(x, y, size, size, "fill:"+fill)
		if pc := pos.Get(sq); pc != board.NoPiece {
			canvas.Text(x+size/2, y+size*4/5, glyphs[pc],
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*4/5))
		}
	}
	canvas.End()
}
