// Package oracle cross-checks the move generator against independent
// generators. The references implement en passant and this engine does not,
// so comparisons are only meaningful where no en passant capture can occur
// within the searched depth.
package oracle

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-minimax/board"
)

// Oracle counts legal move paths for a FEN with some other move generator.
type Oracle interface {
	Name() string
	Perft(fen string, depth int) (uint64, error)
	Divide(fen string, depth int) (map[string]uint64, error)
}

// Mismatch is one root move whose subtree count differs. A zero count means
// the move is missing on that side.
type Mismatch struct {
	Move string
	Got  uint64
	Want uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d want %d", m.Move, m.Got, m.Want)
}

// Compare divides fen to depth with the engine and with ref and returns the
// differing root moves sorted by move text.
func Compare(fen string, depth int, ref Oracle) ([]Mismatch, error) {
	g, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	got := board.PerftDivide(g, depth)
	want, err := ref.Divide(fen, depth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref.Name(), err)
	}
	keys := maps.Keys(got)
	for k := range want {
		if _, ok := got[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	var out []Mismatch
	for _, k := range keys {
		if got[k] != want[k] {
			out = append(out, Mismatch{Move: k, Got: got[k], Want: want[k]})
		}
	}
	return out, nil
}

// All returns every available reference.
func All() []Oracle {
	return []Oracle{Dragontooth{}, Goose{}, Notnil{}}
}
