// Package config holds the engine settings shared by the UCI front end and
// the command-line tools.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfig indicates an out-of-range or unknown setting.
var ErrInvalidConfig = errors.New("invalid configuration")

// DepthLimit bounds MaxDepth; recursion depth equals search depth.
const DepthLimit = 16

// Config controls the searcher.
type Config struct {
	// Depth is the ply count used by "go" without an explicit depth.
	Depth int
	// MaxDepth caps any requested depth.
	MaxDepth int
	// AlphaBeta enables pruning. Scores are identical either way.
	AlphaBeta bool
	// PieceSquareTables adds the knight and bishop square bonuses.
	PieceSquareTables bool
	// Debug turns on per-move search logging.
	Debug bool
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Depth:             4,
		MaxDepth:          8,
		AlphaBeta:         true,
		PieceSquareTables: true,
	}
}

// Validate checks the depth settings.
func (c *Config) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > DepthLimit {
		return fmt.Errorf("%w: max depth %d outside [1,%d]", ErrInvalidConfig, c.MaxDepth, DepthLimit)
	}
	if c.Depth < 1 || c.Depth > c.MaxDepth {
		return fmt.Errorf("%w: depth %d outside [1,%d]", ErrInvalidConfig, c.Depth, c.MaxDepth)
	}
	return nil
}

// ClampDepth limits a requested depth to [1, MaxDepth].
func (c *Config) ClampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > c.MaxDepth {
		return c.MaxDepth
	}
	return depth
}

// Set applies a named option as sent by "setoption". Names are matched
// case-insensitively. The config is unchanged on error.
func (c *Config) Set(name, value string) error {
	next := *c
	var err error
	switch strings.ToLower(name) {
	case "depth":
		next.Depth, err = strconv.Atoi(value)
	case "maxdepth":
		next.MaxDepth, err = strconv.Atoi(value)
	case "alphabeta":
		next.AlphaBeta, err = strconv.ParseBool(value)
	case "piecesquaretables":
		next.PieceSquareTables, err = strconv.ParseBool(value)
	case "debug":
		next.Debug, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("%w: unknown option %q", ErrInvalidConfig, name)
	}
	if err != nil {
		return fmt.Errorf("%w: option %s: %v", ErrInvalidConfig, name, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
