// Package config provides configuration for the chess-movegen tools.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // tag pairs and wrapped move lists
	JSON                     // JSON documents
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat parses "text" or "json", ignoring case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=warnings, 1=info, 2=debug

	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Analysis  *AnalysisConfig
	Server    *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Analysis:   NewAnalysisConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the combined settings.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	if c.Analysis.PerftDepth > c.Server.MaxDepth {
		return fmt.Errorf("perft depth %d exceeds maximum %d: %w", c.Analysis.PerftDepth, c.Server.MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}
