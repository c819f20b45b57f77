package main

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/game"
	"github.com/lgbarn/chess-movegen-go/internal/output"
)

// runReplay plays moves from fen and writes the resulting game. When a move
// is rejected the game up to that move is still written and the error is
// returned.
func runReplay(cfg *config.Config, logger zerolog.Logger, fen, moves string) error {
	g, replayErr := game.Replay(fen, strings.Fields(moves))
	if g == nil {
		return replayErr
	}
	if replayErr != nil {
		logger.Error().Err(replayErr).Int("played", len(g.History())).Msg("replay stopped")
	}

	draws := g.DrawRules()
	logger.Info().
		Int("plies", len(g.History())).
		Str("result", g.Result()).
		Bool("draw", draws.IsDraw()).
		Bool("claimable", draws.Claimable()).
		Msg("replay complete")

	writer := output.NewWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(g); err != nil {
		return errors.Wrap(err, "write game")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "write game")
	}
	return replayErr
}
