package oracle

import (
	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
)

// Goose uses GooseEngineMG's perft.
type Goose struct{}

func (Goose) Name() string { return "goosemg" }

func (Goose) Perft(fen string, depth int) (uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, err
	}
	return goosemg.Perft(b, depth), nil
}

func (Goose) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(b, depth) {
		out[m.String()] = n
	}
	return out, nil
}
