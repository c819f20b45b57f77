package chess

// Square indexes the 64 board squares rank-major from a8 (0) to h1 (63).
type Square int8

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// Useful squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A1 Square = 56 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// SquareAt returns the square for a 0-based file (a=0) and rank (rank 1 = 0).
func SquareAt(file, rank int) Square {
	return Square(file | ((rank ^ 7) << 3))
}

// File returns the 0-based file of the square (a=0 .. h=7).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the 0-based rank of the square (rank 1 = 0 .. rank 8 = 7).
func (s Square) Rank() int {
	return (int(s) >> 3) ^ 7
}

// Valid reports whether s is one of the 64 board squares.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareAt(int(file-ColBase), int(rank-RankBase)), true
}
