package hashing

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	pieceKeys    [2][chess.NumPieceValues][chess.NumSquares]uint64
	castlingKeys [16]uint64
	epFileKeys   [chess.BoardSize]uint64
	blackToMove  uint64
)

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for colour := range pieceKeys {
		for piece := chess.Pawn; piece < chess.NumPieceValues; piece++ {
			for sq := range pieceKeys[colour][piece] {
				pieceKeys[colour][piece][sq] = next()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = next()
	}
	blackToMove = next()
}

// GenerateZobristHash returns the Zobrist hash of a position. Boards that
// engine.EqualPosition considers equal always hash equally; clocks are not
// part of the hash.
func GenerateZobristHash(board chess.Board) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.PieceAt(sq)
		if piece == chess.Empty {
			continue
		}
		hash ^= pieceKeys[board.ColourAt(sq)][piece][sq]
	}
	hash ^= castlingKeys[board.Castling()&chess.AllCastling]
	if ep := board.EnPassant(); ep != chess.NoSquare {
		hash ^= epFileKeys[ep.File()]
	}
	if board.ToMove() == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap placement checksum used to confirm Zobrist matches.
func WeakHash(board chess.Board) uint32 {
	var sum uint32
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.PieceAt(sq)
		if piece == chess.Empty {
			continue
		}
		code := uint32(piece)
		if board.ColourAt(sq) == chess.Black {
			code += uint32(chess.NumPieceValues)
		}
		sum += code * uint32(sq+1) * 2654435761
	}
	return sum
}
