package game

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
)

// Halfmove clock values and repetition counts for the draw rules.
const (
	seventyFiveMoveLimit = 150
	threefold            = 3
	fivefold             = 5
)

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// FiftyMoveRule is true once a draw may be claimed because 50 moves
	// by each side were made without a pawn move or capture.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is true if 75 moves (150 half-moves) were made
	// without a pawn move or capture.
	SeventyFiveMoveRule bool

	// ThreefoldRepetition is true if any position occurred 3 or more times.
	ThreefoldRepetition bool

	// FivefoldRepetition is true if any position occurred 5 or more times.
	FivefoldRepetition bool

	// InsufficientMaterial is true if the current position has insufficient
	// mating material for either side.
	InsufficientMaterial bool
}

// IsDraw reports whether any rule draws the game without a claim.
func (r DrawRuleResult) IsDraw() bool {
	return r.SeventyFiveMoveRule || r.FivefoldRepetition || r.InsufficientMaterial
}

// Claimable reports whether a player may claim a draw.
func (r DrawRuleResult) Claimable() bool {
	return r.FiftyMoveRule || r.ThreefoldRepetition
}

// DrawRules analyzes the game so far for draw conditions.
func (g *Game) DrawRules() DrawRuleResult {
	maxReps := g.repetitions.MaxCount()
	return DrawRuleResult{
		FiftyMoveRule:        engine.IsFiftyMoveDraw(g.board),
		SeventyFiveMoveRule:  g.board.HalfmoveClock() >= seventyFiveMoveLimit,
		ThreefoldRepetition:  maxReps >= threefold,
		FivefoldRepetition:   maxReps >= fivefold,
		InsufficientMaterial: engine.HasInsufficientMaterial(g.board),
	}
}

// Result returns the game result as a PGN result token: "1-0" or "0-1"
// after checkmate, "1/2-1/2" after stalemate or an automatic draw, and
// "*" otherwise.
func (g *Game) Result() string {
	switch g.Status() {
	case engine.Checkmate:
		if g.board.ToMove() == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate:
		return "1/2-1/2"
	}
	if g.DrawRules().IsDraw() {
		return "1/2-1/2"
	}
	return "*"
}
