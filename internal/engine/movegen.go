package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// promotionPieces lists promotion choices in generation order.
var promotionPieces = [...]chess.Piece{chess.Knight, chess.Bishop, chess.Rook, chess.Queen}

// GeneratePseudoMoves returns every geometrically possible move for the side
// to move, ignoring whether it leaves the mover's own king in check.
//
// Moves are emitted in board-scan order (a8 to h1), followed by castling
// and then en passant captures, so the order is stable across calls.
func GeneratePseudoMoves(board chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	side := board.ToMove()

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if board.ColourAt(from) != side {
			continue
		}
		if board.PieceAt(from) == chess.Pawn {
			moves = appendPawnMoves(moves, board, from)
		} else {
			moves = appendPieceMoves(moves, board, from)
		}
	}

	moves = appendCastlingMoves(moves, board)
	return appendEnPassantMoves(moves, board)
}

// appendPawnMoves adds captures, the single push and the double push of the
// pawn on from.
func appendPawnMoves(moves []chess.Move, board chess.Board, from chess.Square) []chess.Move {
	side := board.ToMove()
	enemy := side.Opposite()

	for _, offset := range chess.PawnCaptureOffsets[side] {
		to := chess.Step(from, offset)
		if to != chess.NoSquare && board.ColourAt(to) == enemy {
			moves = appendPawnMove(moves, side, from, to, chess.FlagPawnMove|chess.FlagCapture)
		}
	}

	push := chess.PawnPushOffset[side]
	to := chess.Step(from, push)
	if to == chess.NoSquare || !board.IsEmpty(to) {
		return moves
	}
	moves = appendPawnMove(moves, side, from, to, chess.FlagPawnMove)

	if from.Rank() == pawnHomeRank(side) {
		double := chess.Step(to, push)
		if board.IsEmpty(double) {
			moves = appendPawnMove(moves, side, from, double, chess.FlagPawnMove|chess.FlagDoublePawnPush)
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into the four promotions when it
// lands on the last rank.
func appendPawnMove(moves []chess.Move, side chess.Colour, from, to chess.Square, flags chess.MoveFlags) []chess.Move {
	if to.Rank() != pawnLastRank(side) {
		return append(moves, chess.NewMove(from, to, flags, chess.Empty))
	}
	for _, piece := range promotionPieces {
		moves = append(moves, chess.NewMove(from, to, flags, piece))
	}
	return moves
}

// appendPieceMoves adds the stepping or sliding moves of the piece on from.
func appendPieceMoves(moves []chess.Move, board chess.Board, from chess.Square) []chess.Move {
	piece := board.PieceAt(from)
	enemy := board.ToMove().Opposite()
	slides := chess.Slides[piece]

	for _, offset := range chess.Offsets[piece] {
		for to := chess.Step(from, offset); to != chess.NoSquare; to = chess.Step(to, offset) {
			if !board.IsEmpty(to) {
				if board.ColourAt(to) == enemy {
					moves = append(moves, chess.NewMove(from, to, chess.FlagCapture, chess.Empty))
				}
				break
			}
			moves = append(moves, chess.NewMove(from, to, 0, chess.Empty))
			if !slides {
				break
			}
		}
	}
	return moves
}

// appendCastlingMoves adds a king move of two squares for every castling
// right still held. Whether castling is actually possible is decided by Apply.
func appendCastlingMoves(moves []chess.Move, board chess.Board) []chess.Move {
	for _, c := range castlings {
		if c.colour == board.ToMove() && board.Castling().Has(c.right) {
			moves = append(moves, chess.NewMove(c.kingFrom, c.kingTo, chess.FlagCastle, chess.Empty))
		}
	}
	return moves
}

// appendEnPassantMoves adds captures onto the en passant target square by
// any pawn of the side to move standing diagonally behind it.
func appendEnPassantMoves(moves []chess.Move, board chess.Board) []chess.Move {
	target := board.EnPassant()
	if target == chess.NoSquare || board.PieceAt(target) != chess.Empty {
		return moves
	}
	side := board.ToMove()
	// A pawn of side captures onto target from the squares an enemy pawn
	// standing on target would attack.
	for _, offset := range chess.PawnCaptureOffsets[side.Opposite()] {
		from := chess.Step(target, offset)
		if from == chess.NoSquare {
			continue
		}
		if board.ColourAt(from) == side && board.PieceAt(from) == chess.Pawn {
			moves = append(moves, chess.NewMove(from, target,
				chess.FlagCapture|chess.FlagPawnMove|chess.FlagEnPassant, chess.Empty))
		}
	}
	return moves
}

// pawnHomeRank returns the 0-based rank pawns of colour start on.
func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// pawnLastRank returns the 0-based rank where pawns of colour promote.
func pawnLastRank(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}
