package oracle

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// Dragontooth walks the tree with dragontoothmg's legal generator.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (d Dragontooth) Perft(fen string, depth int) (n uint64, err error) {
	defer recoverFEN(fen, &err)
	b := dragontoothmg.ParseFen(fen)
	return dragontoothPerft(&b, depth), nil
}

func (d Dragontooth) Divide(fen string, depth int) (out map[string]uint64, err error) {
	defer recoverFEN(fen, &err)
	b := dragontoothmg.ParseFen(fen)
	out = make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return out, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// recoverFEN turns a parser panic into an error.
func recoverFEN(fen string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("bad FEN %q: %v", fen, r)
	}
}
