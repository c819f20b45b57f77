package chess

// The board geometry works on a 10x12 padded board. Every real square maps
// into the padded board through mailbox64; stepping by an offset there and
// mapping back through mailbox yields -1 whenever the step leaves the board,
// so no move can wrap from one edge file to the other.

var mailbox = [120]Square{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1,
	-1, 8, 9, 10, 11, 12, 13, 14, 15, -1,
	-1, 16, 17, 18, 19, 20, 21, 22, 23, -1,
	-1, 24, 25, 26, 27, 28, 29, 30, 31, -1,
	-1, 32, 33, 34, 35, 36, 37, 38, 39, -1,
	-1, 40, 41, 42, 43, 44, 45, 46, 47, -1,
	-1, 48, 49, 50, 51, 52, 53, 54, 55, -1,
	-1, 56, 57, 58, 59, 60, 61, 62, 63, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

var mailbox64 = [NumSquares]int8{
	21, 22, 23, 24, 25, 26, 27, 28,
	31, 32, 33, 34, 35, 36, 37, 38,
	41, 42, 43, 44, 45, 46, 47, 48,
	51, 52, 53, 54, 55, 56, 57, 58,
	61, 62, 63, 64, 65, 66, 67, 68,
	71, 72, 73, 74, 75, 76, 77, 78,
	81, 82, 83, 84, 85, 86, 87, 88,
	91, 92, 93, 94, 95, 96, 97, 98,
}

// Slides reports whether a piece repeats its offsets until blocked.
var Slides = [NumPieceValues]bool{
	Bishop: true,
	Rook:   true,
	Queen:  true,
}

// Offsets lists the padded-board direction vectors of each non-pawn piece.
var Offsets = [NumPieceValues][]int8{
	Knight: {-21, -19, -12, -8, 8, 12, 19, 21},
	Bishop: {-11, -9, 9, 11},
	Rook:   {-10, -1, 1, 10},
	Queen:  {-11, -10, -9, -1, 1, 9, 10, 11},
	King:   {-11, -10, -9, -1, 1, 9, 10, 11},
}

// PawnCaptureOffsets lists the two diagonal capture vectors of a pawn,
// toward the lower file first.
var PawnCaptureOffsets = [2][2]int8{
	White: {-11, -9},
	Black: {9, 11},
}

// PawnPushOffset is the one-square advance of a pawn.
var PawnPushOffset = [2]int8{
	White: -10,
	Black: 10,
}

// Step moves one offset from sq on the padded board. It returns NoSquare
// when the destination is off the board.
func Step(sq Square, offset int8) Square {
	return mailbox[int(mailbox64[sq])+int(offset)]
}
