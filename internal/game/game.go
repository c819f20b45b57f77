// Package game keeps the record of a game played on immutable boards:
// the move history, repetition counts and draw rule state.
package game

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/hashing"
)

// Ply is one half-move of the game.
type Ply struct {
	// Text is the move as the caller gave it.
	Text string
	// FEN is the position after the move.
	FEN string
}

// Game is a sequence of positions starting from a FEN. It is not safe for
// concurrent use.
type Game struct {
	start       chess.Board
	board       chess.Board
	history     []Ply
	repetitions *hashing.RepetitionTracker
}

// New starts a game from fen; the empty string selects the initial position.
func New(fen string) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		start:       board,
		board:       board,
		repetitions: hashing.NewRepetitionTracker(),
	}
	g.repetitions.Add(board)
	return g, nil
}

// Replay starts a game from fen and plays moves in order, each in long or
// standard algebraic notation. It stops at the first move that fails.
func Replay(fen string, moves []string) (*Game, error) {
	g, err := New(fen)
	if err != nil {
		return nil, err
	}
	for i, mv := range moves {
		if err := g.Play(mv); err != nil {
			return g, errors.Wrapf(err, "ply %d", i+1)
		}
	}
	return g, nil
}

// Board returns the current position.
func (g *Game) Board() chess.Board {
	return g.board
}

// Start returns the starting position.
func (g *Game) Start() chess.Board {
	return g.start
}

// FEN returns the current position as FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// History returns the plies played so far.
func (g *Game) History() []Ply {
	out := make([]Ply, len(g.history))
	copy(out, g.history)
	return out
}

// Move plays a move in long algebraic notation.
func (g *Game) Move(lan string) error {
	next, err := engine.MoveLAN(g.board, lan)
	if err != nil {
		return err
	}
	g.advance(lan, next)
	return nil
}

// MoveSAN plays a move in standard algebraic notation, resolving several
// matching moves to the first by square order.
func (g *Game) MoveSAN(san string) error {
	next, err := engine.MoveSAN(g.board, san)
	if err != nil {
		return err
	}
	g.advance(san, next)
	return nil
}

// Play accepts either notation: text that is not long algebraic is read
// as SAN.
func (g *Game) Play(text string) error {
	err := g.Move(text)
	if errors.Is(err, errors.ErrMalformedInput) {
		return g.MoveSAN(text)
	}
	return err
}

func (g *Game) advance(text string, next chess.Board) {
	g.board = next
	g.history = append(g.history, Ply{Text: text, FEN: engine.BoardToFEN(next)})
	g.repetitions.Add(next)
}

// Status classifies the current position for the side to move.
func (g *Game) Status() engine.Status {
	return engine.PositionStatus(g.board)
}

// RepetitionCount returns how many times the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.repetitions.Count(g.board)
}
