package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/hashing"
	"github.com/lgbarn/chess-movegen-go/internal/output"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

// BatchStats summarises a batch run.
type BatchStats struct {
	Positions  int
	Duplicates int
	Errors     int
}

// readFENs reads one FEN per line, skipping blank lines and # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read positions")
	}
	return fens, nil
}

// runBatch analyses every FEN in r and writes the results to cfg.OutputFile
// in input order.
func runBatch(ctx context.Context, cfg *config.Config, logger zerolog.Logger, r io.Reader) (BatchStats, error) {
	var stats BatchStats
	fens, err := readFENs(r)
	if err != nil {
		return stats, err
	}

	opts := worker.AnalysisOptions{
		PerftDepth: cfg.Analysis.PerftDepth,
		Divide:     cfg.Analysis.Divide,
	}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		opts.Duplicates = worker.MarkDuplicates(fens, hashing.NewDuplicateDetector(cfg.Duplicate.MaxPositions))
	}

	start := time.Now()
	logger.Debug().Int("positions", len(fens)).Int("workers", cfg.Analysis.Workers).Msg("batch started")

	results, err := worker.Run(ctx, fens, worker.NewAnalyzer(opts),
		worker.WithWorkers(cfg.Analysis.Workers),
		worker.WithBufferSize(cfg.Analysis.BufferSize))
	if err != nil {
		return stats, errors.Wrap(err, "analyse positions")
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	for _, result := range results {
		stats.Positions++
		switch {
		case result.Duplicate:
			stats.Duplicates++
			if w := cfg.Duplicate.DuplicateFile; w != nil {
				if _, err := fmt.Fprintln(w, result.FEN); err != nil {
					return stats, errors.Wrap(err, "write duplicate")
				}
			}
			logger.Debug().Int("index", result.Index+1).Str("fen", result.FEN).Msg("duplicate position")
			continue
		case result.Error != nil:
			stats.Errors++
			logger.Warn().Err(result.Error).Int("index", result.Index+1).Msg("bad position")
		}
		if err := writer.WriteResult(result); err != nil {
			return stats, errors.Wrap(err, "write result")
		}
	}
	if err := writer.Close(); err != nil {
		return stats, errors.Wrap(err, "write results")
	}

	logger.Info().
		Int("positions", stats.Positions).
		Int("duplicates", stats.Duplicates).
		Int("errors", stats.Errors).
		Dur("elapsed", elapsed(start)).
		Msg("batch complete")
	return stats, nil
}
