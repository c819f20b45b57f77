package engine

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// SANPlaceholder is returned in place of SAN text for generated moves.
const SANPlaceholder = "?"

// ToLAN renders a move in long algebraic notation: "e2e4", or "e7e8=Q"
// for promotions.
func ToLAN(from, to chess.Square, promotion chess.Piece) string {
	lan := from.String() + to.String()
	if promotion != chess.Empty {
		lan += "=" + string(promotion.Letter())
	}
	return lan
}

// MoveToLAN renders a candidate move in long algebraic notation.
func MoveToLAN(move chess.Move) string {
	return ToLAN(move.From, move.To, move.Promotion)
}

// ToSAN is the SAN renderer for generated moves. SAN generation is not
// implemented; it always returns SANPlaceholder.
func ToSAN(chess.Board, chess.Move) string {
	return SANPlaceholder
}

// ParseLAN resolves long algebraic text against the pseudo-moves of board.
// It accepts "e2e4", "e7e8=Q" and the UCI form "e7e8q". Text that is not
// shaped like a move wraps errors.ErrMalformedInput; a well-formed move with
// no matching pseudo-move wraps errors.ErrIllegalMove.
func ParseLAN(board chess.Board, lan string) (chess.Move, error) {
	from, to, promotion, err := splitLAN(lan)
	if err != nil {
		return chess.Move{}, err
	}
	move, ok := FindPseudoMove(board, from, to, promotion)
	if !ok {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: lan}
	}
	return move, nil
}

// MoveLAN plays a move given in long algebraic notation.
func MoveLAN(board chess.Board, lan string) (chess.Board, error) {
	move, err := ParseLAN(board, lan)
	if err != nil {
		return board, err
	}
	next, ok := Apply(board, move)
	if !ok {
		return board, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: lan}
	}
	return next, nil
}

// splitLAN breaks long algebraic text into its squares and promotion piece.
func splitLAN(lan string) (chess.Square, chess.Square, chess.Piece, error) {
	malformed := func() error {
		return &errors.MoveError{Err: fmt.Errorf("%w: not long algebraic notation", errors.ErrMalformedInput), MoveText: lan}
	}

	var promoLetter byte
	switch len(lan) {
	case 4:
	case 5:
		promoLetter = byte(unicode.ToUpper(rune(lan[4])))
	case 6:
		if lan[4] != '=' {
			return chess.NoSquare, chess.NoSquare, chess.Empty, malformed()
		}
		promoLetter = lan[5]
	default:
		return chess.NoSquare, chess.NoSquare, chess.Empty, malformed()
	}

	from, ok := chess.ParseSquare(lan[0:2])
	if !ok {
		return chess.NoSquare, chess.NoSquare, chess.Empty, malformed()
	}
	to, ok := chess.ParseSquare(lan[2:4])
	if !ok {
		return chess.NoSquare, chess.NoSquare, chess.Empty, malformed()
	}

	promotion := chess.Empty
	if promoLetter != 0 {
		promotion = chess.PieceFromLetter(promoLetter)
		if promotion == chess.Empty {
			return chess.NoSquare, chess.NoSquare, chess.Empty, malformed()
		}
	}
	return from, to, promotion, nil
}
