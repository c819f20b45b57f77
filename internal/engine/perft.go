package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, move := range GeneratePseudoMoves(board) {
		next, ok := Apply(board, move)
		if !ok {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal move, keyed by its long
// algebraic notation.
func Divide(board chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, move := range GeneratePseudoMoves(board) {
		next, ok := Apply(board, move)
		if !ok {
			continue
		}
		counts[MoveToLAN(move)] = Perft(next, depth-1)
	}
	return counts
}
