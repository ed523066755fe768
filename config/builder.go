package config

// Builder provides a fluent API for building Config instances.
type Builder struct {
	cfg *Config
}

// NewBuilder starts from NewConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: NewConfig()}
}

// Build validates and returns the config.
func (b *Builder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

func (b *Builder) WithDepth(depth int) *Builder {
	b.cfg.Depth = depth
	return b
}

func (b *Builder) WithMaxDepth(depth int) *Builder {
	b.cfg.MaxDepth = depth
	return b
}

func (b *Builder) WithAlphaBeta(enabled bool) *Builder {
	b.cfg.AlphaBeta = enabled
	return b
}

func (b *Builder) WithPieceSquareTables(enabled bool) *Builder {
	b.cfg.PieceSquareTables = enabled
	return b
}

func (b *Builder) WithDebug(enabled bool) *Builder {
	b.cfg.Debug = enabled
	return b
}
