package oracle

import (
	"github.com/notnil/chess"
)

// Notnil walks the tree with notnil/chess positions. It allocates a new
// position per node, so keep depths small.
type Notnil struct{}

func (Notnil) Name() string { return "notnil/chess" }

func (Notnil) Perft(fen string, depth int) (uint64, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return 0, err
	}
	return notnilPerft(pos, depth), nil
}

func (Notnil) Divide(fen string, depth int) (map[string]uint64, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range pos.ValidMoves() {
		out[chess.UCINotation{}.Encode(pos, m)] = notnilPerft(pos.Update(m), depth-1)
	}
	return out, nil
}

func notnilPosition(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt).Position(), nil
}

func notnilPerft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += notnilPerft(pos.Update(m), depth-1)
	}
	return nodes
}
