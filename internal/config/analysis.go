package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	// PerftDepth counts leaf nodes to this depth (0 = off)
	PerftDepth int

	// Divide adds the per-move breakdown to perft
	Divide bool

	// Workers is the number of analysis goroutines
	Workers int

	// BufferSize is the work queue length
	BufferSize int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers:    1,
		BufferSize: 64,
	}
}

// ResolveWorkers maps a requested worker count to the count to run:
// zero or less selects one worker per CPU.
func ResolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Validate checks that the settings are consistent.
func (c *AnalysisConfig) Validate() error {
	if c.PerftDepth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", c.PerftDepth, errors.ErrInvalidConfig)
	}
	if c.Divide && c.PerftDepth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}

// ServerConfig holds settings for the line protocol server.
type ServerConfig struct {
	// MaxDepth is the deepest perft a client may request
	MaxDepth int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{MaxDepth: 5}
}
