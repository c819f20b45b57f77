package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithFENs records the position after each replayed ply.
func (b *ConfigBuilder) WithFENs(enabled bool) *ConfigBuilder {
	b.cfg.Output.AddFENs = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool, maxPositions int) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	b.cfg.Duplicate.MaxPositions = maxPositions
	return b
}

// WithPerft enables perft counting to depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	b.cfg.Analysis.Divide = divide
	return b
}

// WithWorkers sets the number of analysis goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithMaxDepth sets the server's perft limit.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Server.MaxDepth = depth
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
