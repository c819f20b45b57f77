// Package generator is the stateless entry point used by move-generation
// clients: given a position as FEN it returns the position together with
// every legal move, and it plays a single move on request.
package generator

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// NotatedMove is a move in both notations. SAN is "?" for generated moves.
type NotatedMove struct {
	LAN string `json:"lan"`
	SAN string `json:"san"`
}

// State is a position with its legal moves, as returned to clients.
type State struct {
	Board        string        `json:"board"`
	AllowedMoves []NotatedMove `json:"allowedMoves"`
	SideToMove   string        `json:"sideToMove"`
	Message      string        `json:"message,omitempty"`
}

// First returns the state of the position fen. An empty fen selects the
// initial position.
func First(fen string) (State, error) {
	board, err := parse(fen)
	if err != nil {
		return State{}, err
	}
	return NewState(board), nil
}

// Move plays mv in the position fen and returns the resulting state. The
// LAN field is used when set; otherwise SAN is resolved. A move that does
// not resolve to a legal move fails with errors.ErrIllegalMove.
func Move(fen string, mv NotatedMove) (State, error) {
	board, err := parse(fen)
	if err != nil {
		return State{}, err
	}

	var next chess.Board
	switch {
	case mv.LAN != "":
		next, err = engine.MoveLAN(board, mv.LAN)
	case mv.SAN != "" && mv.SAN != engine.SANPlaceholder:
		next, err = engine.MoveSAN(board, mv.SAN)
	default:
		return State{}, errors.Wrap(errors.ErrMalformedInput, "move has neither LAN nor SAN")
	}
	if err != nil {
		return State{}, withFEN(err, fen)
	}
	return NewState(next), nil
}

// NewState builds the client view of board.
func NewState(board chess.Board) State {
	legal := engine.LegalMoves(board)
	moves := make([]NotatedMove, 0, len(legal))
	for _, m := range legal {
		moves = append(moves, NotatedMove{
			LAN: engine.MoveToLAN(m),
			SAN: engine.ToSAN(board, m),
		})
	}

	state := State{
		Board:        engine.BoardToFEN(board),
		AllowedMoves: moves,
		SideToMove:   engine.SideName(board.ToMove()),
	}
	switch {
	case len(legal) == 0 && board.InCheck():
		state.Message = engine.Checkmate.String()
	case len(legal) == 0:
		state.Message = engine.Stalemate.String()
	case board.InCheck():
		state.Message = engine.Check.String()
	}
	return state
}

func parse(fen string) (chess.Board, error) {
	if fen == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.ParseFEN(fen)
}

// withFEN records the position on move errors.
func withFEN(err error, fen string) error {
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) && moveErr.FEN == "" {
		moveErr.FEN = fen
	}
	return err
}
