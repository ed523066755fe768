package config

import (
	"testing"

	"chess-minimax/testutil"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertTrue(t, cfg.AlphaBeta)
	testutil.AssertTrue(t, cfg.PieceSquareTables)
}

func TestBuilder(t *testing.T) {
	cfg, err := NewBuilder().WithDepth(6).WithMaxDepth(10).WithAlphaBeta(false).WithDebug(true).Build()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *cfg, Config{Depth: 6, MaxDepth: 10, AlphaBeta: false, PieceSquareTables: true, Debug: true})

	_, err = NewBuilder().WithDepth(0).Build()
	testutil.AssertErrorIs(t, err, ErrInvalidConfig)
	_, err = NewBuilder().WithMaxDepth(DepthLimit + 1).Build()
	testutil.AssertErrorIs(t, err, ErrInvalidConfig)
}

func TestSet(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertNoError(t, cfg.Set("Depth", "3"))
	testutil.AssertEqual(t, cfg.Depth, 3)
	testutil.AssertNoError(t, cfg.Set("PieceSquareTables", "false"))
	testutil.AssertFalse(t, cfg.PieceSquareTables)

	before := *cfg
	testutil.AssertErrorIs(t, cfg.Set("Depth", "99"), ErrInvalidConfig)
	testutil.AssertErrorIs(t, cfg.Set("Depth", "x"), ErrInvalidConfig)
	testutil.AssertErrorIs(t, cfg.Set("Hash", "16"), ErrInvalidConfig)
	testutil.AssertEqual(t, *cfg, before)
}

func TestClampDepth(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertEqual(t, cfg.ClampDepth(0), 1)
	testutil.AssertEqual(t, cfg.ClampDepth(3), 3)
	testutil.AssertEqual(t, cfg.ClampDepth(50), cfg.MaxDepth)
}
