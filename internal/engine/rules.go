package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which either player may
// claim a draw.
const FiftyMoveLimit = 100

// Status summarises the outcome state of a position for the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case name used in public messages.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return ""
	}
}

// PositionStatus classifies the position for the side to move.
func PositionStatus(board chess.Board) Status {
	hasMoves := HasLegalMoves(board)
	switch {
	case board.InCheck() && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case board.InCheck():
		return Check
	default:
		return InProgress
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board chess.Board) bool {
	return board.InCheck() && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board chess.Board) bool {
	return !board.InCheck() && !HasLegalMoves(board)
}

// IsFiftyMoveDraw returns true once fifty moves by each side have passed
// without a pawn move or capture.
func IsFiftyMoveDraw(board chess.Board) bool {
	return board.HalfmoveClock() >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.PieceAt(sq)
		switch piece {
		case chess.Empty, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if board.ColourAt(sq) == chess.White {
			whitePieces = append(whitePieces, piece)
			if piece == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece)
			if piece == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
