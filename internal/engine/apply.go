package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// Apply plays a candidate move and returns the resulting board.
// It returns false, leaving board untouched, when the move is illegal: a
// castle whose king is in check, whose path is blocked or attacked, or any
// move that leaves the mover's own king attacked.
//
// Apply is both the legality filter and the state transition; the legal
// moves of a position are exactly the pseudo-moves it accepts.
func Apply(board chess.Board, move chess.Move) (chess.Board, bool) {
	side := board.ToMove()
	next := board.Builder()

	if move.IsCastle() {
		c, ok := findCastling(side, move.To)
		if !ok || move.From != c.kingFrom || !canCastle(board, c) {
			return board, false
		}
		next.Relocate(c.rookFrom, c.rookTo)
	}

	if side == chess.Black {
		next.SetMoveNumber(board.MoveNumber() + 1)
	}

	next.SetCastling(board.Castling() & castleMask[move.From] & castleMask[move.To])

	if move.Flags.Has(chess.FlagDoublePawnPush) {
		next.SetEnPassant(chess.Step(move.To, -chess.PawnPushOffset[side]))
	} else {
		next.SetEnPassant(chess.NoSquare)
	}

	if move.Flags.Has(chess.FlagPawnMove | chess.FlagCapture) {
		next.SetHalfmoveClock(0)
	} else {
		next.SetHalfmoveClock(board.HalfmoveClock() + 1)
	}

	piece := board.PieceAt(move.From)
	if move.IsPromotion() {
		piece = move.Promotion
	}
	next.Clear(move.From).Set(move.To, side, piece)

	if move.Flags.Has(chess.FlagEnPassant) {
		next.Clear(chess.Step(move.To, -chess.PawnPushOffset[side]))
	}

	next.SetToMove(side.Opposite())

	after := next.Board()
	if IsInCheck(after, side) {
		return board, false
	}
	return next.SetInCheck(IsInCheck(after, side.Opposite())).Board(), true
}
