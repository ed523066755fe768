package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"chess-minimax/board"
	"chess-minimax/render"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "position to draw")
	move := flag.String("move", "", "optional move to play and highlight, e.g. e2e4")
	out := flag.String("o", "", "output file (default stdout)")
	size := flag.Int("size", 48, "square size in pixels")
	flip := flag.Bool("flip", false, "draw from black's side")
	flag.Parse()

	g, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("%v", err)
	}
	var marked board.Bitboard
	if *move != "" {
		m, err := g.ApplyText(*move)
		if err != nil {
			log.Fatalf("%v", err)
		}
		marked = board.SquareBB(m.From) | board.SquareBB(m.To)
	}

	f := os.Stdout
	if *out != "" {
		if f, err = os.Create(*out); err != nil {
			log.Fatalf("could not create %s: %v", *out, err)
		}
		defer f.Close()
	}
	w := bufio.NewWriter(f)
	render.SVG(w, &g.Pos, marked, render.Options{SquareSize: *size, Flip: *flip})
	if err := w.Flush(); err != nil {
		log.Fatalf("write: %v", err)
	}
}
