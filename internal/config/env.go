package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// configEnv holds raw environment values. Unset variables keep the
// defaults already present in the Config.
type configEnv struct {
	Verbosity     *int    `env:"CHESS_MOVEGEN_VERBOSITY"`
	Format        *string `env:"CHESS_MOVEGEN_FORMAT"`
	MaxLineLength *uint   `env:"CHESS_MOVEGEN_MAX_LINE_LENGTH"`
	Indent        *bool   `env:"CHESS_MOVEGEN_INDENT"`
	Workers       *int    `env:"CHESS_MOVEGEN_WORKERS"`
	BufferSize    *int    `env:"CHESS_MOVEGEN_BUFFER_SIZE"`
	PerftDepth    *int    `env:"CHESS_MOVEGEN_PERFT_DEPTH"`
	MaxDepth      *int    `env:"CHESS_MOVEGEN_MAX_DEPTH"`
	Dedup         *bool   `env:"CHESS_MOVEGEN_DEDUP"`
	MaxPositions  *int    `env:"CHESS_MOVEGEN_MAX_POSITIONS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv overlays CHESS_MOVEGEN_* environment variables onto cfg.
func LoadEnv(cfg *Config) error {
	var raw configEnv
	if err := ParseEnv(&raw); err != nil {
		return err
	}
	return raw.apply(cfg)
}

// LoadEnvFrom is LoadEnv reading from vars instead of the process environment.
func LoadEnvFrom(cfg *Config, vars map[string]string) error {
	var raw configEnv
	if err := env.ParseWithOptions(&raw, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return raw.apply(cfg)
}

func (e configEnv) apply(cfg *Config) error {
	if e.Verbosity != nil {
		cfg.Verbosity = *e.Verbosity
	}
	if e.Format != nil {
		format, err := ParseOutputFormat(*e.Format)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if e.MaxLineLength != nil {
		cfg.Output.MaxLineLength = *e.MaxLineLength
	}
	if e.Indent != nil {
		cfg.Output.Indent = *e.Indent
	}
	if e.Workers != nil {
		cfg.Analysis.Workers = ResolveWorkers(*e.Workers)
	}
	if e.BufferSize != nil {
		cfg.Analysis.BufferSize = *e.BufferSize
	}
	if e.PerftDepth != nil {
		cfg.Analysis.PerftDepth = *e.PerftDepth
	}
	if e.MaxDepth != nil {
		cfg.Server.MaxDepth = *e.MaxDepth
	}
	if e.Dedup != nil {
		cfg.Duplicate.Suppress = *e.Dedup
	}
	if e.MaxPositions != nil {
		cfg.Duplicate.MaxPositions = *e.MaxPositions
	}
	return nil
}
