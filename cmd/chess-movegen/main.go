// chess-movegen generates legal chess moves for positions given as FEN.
// By default it serves JSON-lines requests on stdin; -batch analyses a file
// of positions and -replay plays a move list.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/protocol"
)

const (
	programName    = "chess-movegen"
	programVersion = "0.1.0"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("%s version %s\n", programName, programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(2)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	logger := newLogger(cfg.LogFile, cfg.Verbosity, *quiet)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger, os.Stdin)
	stop()
	closeFiles(cfg)

	if err != nil {
		logger.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

// run dispatches to the mode selected on the command line.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, stdin io.Reader) error {
	switch {
	case *replayMoves != "":
		return runReplay(cfg, logger, *startFEN, *replayMoves)

	case *batchFile != "":
		in := stdin
		if *batchFile != "-" {
			file, err := os.Open(*batchFile) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				return fmt.Errorf("open batch file: %w", err)
			}
			defer file.Close()
			in = file
		}
		_, err := runBatch(ctx, cfg, logger, in)
		return err

	default:
		srv := protocol.NewServer(logger, protocol.WithMaxDepth(cfg.Server.MaxDepth))
		logger.Info().Int("maxDepth", cfg.Server.MaxDepth).Msg("serving on stdin")
		err := srv.Serve(ctx, stdin, cfg.OutputFile)
		if err == context.Canceled {
			return nil
		}
		return err
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// closeFiles closes any files opened by the setup functions.
func closeFiles(cfg *config.Config) {
	for _, w := range []io.Writer{cfg.OutputFile, cfg.Duplicate.DuplicateFile, cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(os.Stderr, "Generates legal chess moves for positions given as FEN.\n\n")
	fmt.Fprintf(os.Stderr, "Modes:\n")
	fmt.Fprintf(os.Stderr, "  (default)           serve JSON-lines requests on stdin\n")
	fmt.Fprintf(os.Stderr, "  -batch FILE         analyse one FEN per line\n")
	fmt.Fprintf(os.Stderr, "  -replay \"MOVES\"     replay a move list from -fen\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRequests (one JSON object per line):\n")
	fmt.Fprintf(os.Stderr, "  {\"op\":\"first\",\"board\":FEN}\n")
	fmt.Fprintf(os.Stderr, "  {\"op\":\"move\",\"board\":FEN,\"move\":{\"lan\":\"e2e4\",\"san\":\"?\"}}\n")
	fmt.Fprintf(os.Stderr, "  {\"op\":\"perft\",\"board\":FEN,\"depth\":N,\"divide\":true}\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: CHESS_MOVEGEN_VERBOSITY, _FORMAT, _MAX_LINE_LENGTH, _INDENT,\n")
	fmt.Fprintf(os.Stderr, "  _WORKERS, _BUFFER_SIZE, _PERFT_DEPTH, _MAX_DEPTH, _DEDUP, _MAX_POSITIONS\n")
}
