package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// EqualPosition reports whether two boards are the same position for
// repetition purposes: identical placement, side to move, castling rights
// and en passant target. Clocks are ignored.
func EqualPosition(a, b chess.Board) bool {
	if a.ToMove() != b.ToMove() || a.Castling() != b.Castling() || a.EnPassant() != b.EnPassant() {
		return false
	}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if a.PieceAt(sq) != b.PieceAt(sq) || a.ColourAt(sq) != b.ColourAt(sq) {
			return false
		}
	}
	return true
}

// Pieces lists the occupant of every square from a8 to h1 as a colour and
// piece code such as "wp" or "bk", with "" for an empty square.
func Pieces(board chess.Board) []string {
	codes := make([]string, chess.NumSquares)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		codes[sq] = PieceCode(board.ColourAt(sq), board.PieceAt(sq))
	}
	return codes
}

// PieceCode returns the two-letter code of a piece, e.g. "wn", or "" for
// an empty square.
func PieceCode(colour chess.Colour, piece chess.Piece) string {
	if piece == chess.Empty {
		return ""
	}
	prefix := byte('w')
	if colour == chess.Black {
		prefix = 'b'
	}
	return string([]byte{prefix, piece.Letter() + ('a' - 'A')})
}

// SideName returns "white" or "black".
func SideName(colour chess.Colour) string {
	if colour == chess.Black {
		return "black"
	}
	return "white"
}
