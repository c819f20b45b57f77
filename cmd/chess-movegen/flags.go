// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-movegen-go/internal/config"
)

var (
	// Modes
	batchFile   = flag.String("batch", "", "Analyse the FENs in this file, one per line (- for stdin)")
	replayMoves = flag.String("replay", "", "Replay a space-separated move list (LAN or SAN)")
	startFEN    = flag.String("fen", "", "Starting position for -replay (default: initial position)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length for text output")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	compactJSON  = flag.Bool("compact", false, "Write JSON without indentation")
	fenComments  = flag.Bool("fencomments", false, "Add the FEN after each replayed move")
	noMoveNums   = flag.Bool("nomovenumbers", false, "Omit move numbers from replayed games")

	// Analysis options
	perftDepth = flag.Int("depth", 0, "Count perft nodes to this depth in -batch mode (0 = off)")
	divide     = flag.Bool("divide", false, "Show per-move perft counts")
	workers    = flag.Int("workers", 1, "Number of worker goroutines (0 = one per CPU)")
	maxDepth   = flag.Int("maxdepth", 5, "Deepest perft a protocol client may request")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions in -batch mode")
	duplicateFile      = flag.String("d", "", "Write duplicate positions to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum positions remembered for duplicate detection (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 0, "Log verbosity: 0=warnings, 1=info, 2=debug")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Only flags
// given on the command line override values loaded from the environment.
func applyFlags(cfg *config.Config) error {
	set := setFlags()

	if err := applyOutputFlags(cfg, set); err != nil {
		return err
	}
	applyAnalysisFlags(cfg, set)
	applyDuplicateFlags(cfg, set)

	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	return nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config, set map[string]bool) error {
	if set["J"] {
		cfg.Output.Format = config.Text
		if *jsonOutput {
			cfg.Output.Format = config.JSON
		}
	}
	if set["w"] {
		if *lineLength < 1 {
			return fmt.Errorf("line length %d must be positive", *lineLength)
		}
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	if set["compact"] {
		cfg.Output.Indent = !*compactJSON
	}
	if set["fencomments"] {
		cfg.Output.AddFENs = *fenComments
	}
	if set["nomovenumbers"] {
		cfg.Output.KeepMoveNumbers = !*noMoveNums
	}
	return nil
}

// applyAnalysisFlags configures batch analysis and server limits.
func applyAnalysisFlags(cfg *config.Config, set map[string]bool) {
	if set["depth"] {
		cfg.Analysis.PerftDepth = *perftDepth
	}
	if set["divide"] {
		cfg.Analysis.Divide = *divide
	}
	if set["workers"] {
		cfg.Analysis.Workers = config.ResolveWorkers(*workers)
	}
	if set["maxdepth"] {
		cfg.Server.MaxDepth = *maxDepth
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config, set map[string]bool) {
	if set["D"] {
		cfg.Duplicate.Suppress = *suppressDuplicates
	}
	if set["duplicate-capacity"] {
		cfg.Duplicate.MaxPositions = *duplicateCapacity
	}
}
