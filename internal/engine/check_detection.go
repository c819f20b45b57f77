package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king reports true so that no move leading to it
// is ever accepted.
func IsInCheck(board chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == chess.NoSquare {
		return true
	}
	return IsAttacked(board, king, colour.Opposite())
}

// IsAttacked returns true if sq is attacked by any piece of byColour.
func IsAttacked(board chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if board.ColourAt(from) != byColour {
			continue
		}
		if attacksSquare(board, from, sq) {
			return true
		}
	}
	return false
}

// attacksSquare reports whether the piece on from attacks target.
func attacksSquare(board chess.Board, from, target chess.Square) bool {
	colour := board.ColourAt(from)
	piece := board.PieceAt(from)

	if piece == chess.Pawn {
		for _, offset := range chess.PawnCaptureOffsets[colour] {
			if chess.Step(from, offset) == target {
				return true
			}
		}
		return false
	}

	slides := chess.Slides[piece]
	for _, offset := range chess.Offsets[piece] {
		for n := chess.Step(from, offset); n != chess.NoSquare; n = chess.Step(n, offset) {
			if n == target {
				return true
			}
			if !board.IsEmpty(n) || !slides {
				break // Blocked
			}
		}
	}
	return false
}
