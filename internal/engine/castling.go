package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// castling describes one of the four castling moves.
type castling struct {
	colour   chess.Colour
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	empty    []chess.Square // must be vacant
	safe     []chess.Square // must not be attacked, besides kingFrom
}

// castlings is ordered king side before queen side, White before Black.
var castlings = [...]castling{
	{
		colour: chess.White, right: chess.WhiteKingside,
		kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
		empty: []chess.Square{chess.F1, chess.G1},
		safe:  []chess.Square{chess.F1, chess.G1},
	},
	{
		colour: chess.White, right: chess.WhiteQueenside,
		kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
		empty: []chess.Square{chess.B1, chess.C1, chess.D1},
		safe:  []chess.Square{chess.C1, chess.D1},
	},
	{
		colour: chess.Black, right: chess.BlackKingside,
		kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
		empty: []chess.Square{chess.F8, chess.G8},
		safe:  []chess.Square{chess.F8, chess.G8},
	},
	{
		colour: chess.Black, right: chess.BlackQueenside,
		kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
		empty: []chess.Square{chess.B8, chess.C8, chess.D8},
		safe:  []chess.Square{chess.C8, chess.D8},
	},
}

// castleMask is ANDed with the castling rights for both squares of every
// move. A king or rook leaving its home square, or a rook being captured
// there, clears the matching rights.
var castleMask = func() [chess.NumSquares]chess.CastlingRights {
	var mask [chess.NumSquares]chess.CastlingRights
	for sq := range mask {
		mask[sq] = chess.AllCastling
	}
	for _, c := range castlings {
		mask[c.kingFrom] &^= c.right
		mask[c.rookFrom] &^= c.right
	}
	return mask
}()

// findCastling returns the castling move whose king lands on to.
func findCastling(colour chess.Colour, to chess.Square) (castling, bool) {
	for _, c := range castlings {
		if c.colour == colour && c.kingTo == to {
			return c, true
		}
	}
	return castling{}, false
}

// canCastle checks the conditions that move generation deferred: the king
// and rook are home, the path between them is empty, the king is not in
// check and does not pass through or land on an attacked square.
func canCastle(board chess.Board, c castling) bool {
	if board.ColourAt(c.kingFrom) != c.colour || board.PieceAt(c.kingFrom) != chess.King {
		return false
	}
	if board.ColourAt(c.rookFrom) != c.colour || board.PieceAt(c.rookFrom) != chess.Rook {
		return false
	}
	for _, sq := range c.empty {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	enemy := c.colour.Opposite()
	if IsAttacked(board, c.kingFrom, enemy) {
		return false
	}
	for _, sq := range c.safe {
		if IsAttacked(board, sq, enemy) {
			return false
		}
	}
	return true
}
