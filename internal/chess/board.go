package chess

// Board is an immutable position snapshot. All fields are fixed-size values,
// so assigning a Board copies it completely; the engine builds successor
// positions with a Builder and never changes a Board after handing it out.
type Board struct {
	colours [NumSquares]Colour
	pieces  [NumSquares]Piece

	// Who has the next move.
	toMove Colour

	castling CastlingRights

	// Square a capturing pawn would land on after a double push, or NoSquare.
	enPassant Square

	// The half-move clock since the last pawn move or capture.
	halfmoveClock uint

	// The current move number; increments after Black moves.
	moveNumber uint

	// Whether the side to move is attacked.
	inCheck bool
}

// ColourAt returns the colour occupying sq, or NoColour if it is empty.
func (b Board) ColourAt(sq Square) Colour {
	if b.pieces[sq] == Empty {
		return NoColour
	}
	return b.colours[sq]
}

// PieceAt returns the piece type occupying sq, or Empty.
func (b Board) PieceAt(sq Square) Piece {
	return b.pieces[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b Board) IsEmpty(sq Square) bool {
	return b.pieces[sq] == Empty
}

// ToMove returns the side to move.
func (b Board) ToMove() Colour {
	return b.toMove
}

// Castling returns the remaining castling rights.
func (b Board) Castling() CastlingRights {
	return b.castling
}

// EnPassant returns the en passant target square, or NoSquare.
func (b Board) EnPassant() Square {
	return b.enPassant
}

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (b Board) HalfmoveClock() uint {
	return b.halfmoveClock
}

// MoveNumber returns the fullmove number.
func (b Board) MoveNumber() uint {
	return b.moveNumber
}

// InCheck reports whether the side to move is in check.
func (b Board) InCheck() bool {
	return b.inCheck
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (b Board) FindKing(colour Colour) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.pieces[sq] == King && b.colours[sq] == colour {
			return sq
		}
	}
	return NoSquare
}

// Builder assembles a Board. The zero Builder is not usable; start from
// NewBuilder or Board.Builder.
type Builder struct {
	b Board
}

// NewBuilder returns a builder for an empty board with White to move,
// no castling rights and move number 1.
func NewBuilder() *Builder {
	bl := &Builder{}
	for sq := range bl.b.colours {
		bl.b.colours[sq] = NoColour
		bl.b.pieces[sq] = Empty
	}
	bl.b.toMove = White
	bl.b.enPassant = NoSquare
	bl.b.moveNumber = 1
	return bl
}

// Builder returns a builder seeded with a copy of b.
func (b Board) Builder() *Builder {
	return &Builder{b: b}
}

// Set places a piece of the given colour on sq.
func (bl *Builder) Set(sq Square, colour Colour, piece Piece) *Builder {
	bl.b.colours[sq] = colour
	bl.b.pieces[sq] = piece
	return bl
}

// Clear empties sq.
func (bl *Builder) Clear(sq Square) *Builder {
	return bl.Set(sq, NoColour, Empty)
}

// Relocate moves whatever occupies from onto to and empties from.
func (bl *Builder) Relocate(from, to Square) *Builder {
	bl.b.colours[to] = bl.b.colours[from]
	bl.b.pieces[to] = bl.b.pieces[from]
	return bl.Clear(from)
}

// SetToMove sets the side to move.
func (bl *Builder) SetToMove(colour Colour) *Builder {
	bl.b.toMove = colour
	return bl
}

// SetCastling sets the castling rights.
func (bl *Builder) SetCastling(rights CastlingRights) *Builder {
	bl.b.castling = rights
	return bl
}

// SetEnPassant sets the en passant target square (NoSquare clears it).
func (bl *Builder) SetEnPassant(sq Square) *Builder {
	bl.b.enPassant = sq
	return bl
}

// SetHalfmoveClock sets the fifty-move counter.
func (bl *Builder) SetHalfmoveClock(n uint) *Builder {
	bl.b.halfmoveClock = n
	return bl
}

// SetMoveNumber sets the fullmove number.
func (bl *Builder) SetMoveNumber(n uint) *Builder {
	bl.b.moveNumber = n
	return bl
}

// SetInCheck records whether the side to move is in check.
func (bl *Builder) SetInCheck(inCheck bool) *Builder {
	bl.b.inCheck = inCheck
	return bl
}

// Board returns the assembled board. The builder may keep being used;
// later changes do not affect boards already returned.
func (bl *Builder) Board() Board {
	return bl.b
}
