// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	White Colour = iota
	Black
	NoColour // Empty square
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Piece represents a chess piece type.
type Piece int8

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts an uppercase piece letter to a piece type.
// It returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return Empty
	}
}

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != 0
}

// MoveFlags classifies a candidate move.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagCastle
	FlagEnPassant
	FlagDoublePawnPush
	FlagPawnMove
	FlagPromotion
)

// Has reports whether any of the flags in f are set.
func (m MoveFlags) Has(f MoveFlags) bool {
	return m&f != 0
}

// Move is a candidate move produced by move generation and consumed by
// move application. It is never persisted.
type Move struct {
	From      Square
	To        Square
	Flags     MoveFlags
	Promotion Piece // Empty unless FlagPromotion is set
}

// NewMove creates a candidate move. A promotion piece other than Empty
// sets FlagPromotion.
func NewMove(from, to Square, flags MoveFlags, promotion Piece) Move {
	if promotion != Empty {
		flags |= FlagPromotion
	}
	return Move{From: from, To: to, Flags: flags, Promotion: promotion}
}

// IsCapture returns true if this move captures a piece (en passant included).
func (m Move) IsCapture() bool {
	return m.Flags.Has(FlagCapture)
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags.Has(FlagCastle)
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Flags.Has(FlagPromotion)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)
