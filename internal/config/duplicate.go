package config

import "io"

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops positions already seen in the batch
	Suppress bool

	// MaxPositions caps the positions remembered (0 = unlimited)
	MaxPositions int

	// DuplicateFile receives the FEN of each suppressed position
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
