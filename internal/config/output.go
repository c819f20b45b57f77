package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// MaxLineLength is the wrap column for move lists in text output
	MaxLineLength uint

	// Indent pretty-prints JSON output
	Indent bool

	// AddFENs records the position after every ply of a replayed game
	AddFENs bool

	// KeepMoveNumbers controls whether replayed games carry move numbers
	KeepMoveNumbers bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		MaxLineLength:   80,
		Indent:          true,
		KeepMoveNumbers: true,
	}
}
