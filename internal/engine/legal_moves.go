package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// LegalMoves returns the pseudo-moves of the side to move that Apply accepts,
// in generation order.
func LegalMoves(board chess.Board) []chess.Move {
	pseudo := GeneratePseudoMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if _, ok := Apply(board, move); ok {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board chess.Board) bool {
	for _, move := range GeneratePseudoMoves(board) {
		if _, ok := Apply(board, move); ok {
			return true
		}
	}
	return false
}

// FindPseudoMove returns the pseudo-move of the side to move going from
// from to to with the given promotion piece (chess.Empty for none).
func FindPseudoMove(board chess.Board, from, to chess.Square, promotion chess.Piece) (chess.Move, bool) {
	if board.ColourAt(from) != board.ToMove() {
		return chess.Move{}, false
	}
	for _, move := range GeneratePseudoMoves(board) {
		if move.From == from && move.To == to && move.Promotion == promotion {
			return move, true
		}
	}
	return chess.Move{}, false
}
