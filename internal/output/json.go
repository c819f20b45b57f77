package output

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/game"
	"github.com/lgbarn/chess-movegen-go/internal/generator"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

// JSONPosition represents one analysed position in JSON format.
type JSONPosition struct {
	Index        int                     `json:"index"`
	FEN          string                  `json:"fen"`
	SideToMove   string                  `json:"sideToMove,omitempty"`
	Message      string                  `json:"message,omitempty"`
	AllowedMoves []generator.NotatedMove `json:"allowedMoves,omitempty"`
	Depth        int                     `json:"depth,omitempty"`
	Nodes        *uint64                 `json:"nodes,omitempty"`
	Divide       map[string]uint64       `json:"divide,omitempty"`
	Duplicate    bool                    `json:"duplicate,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	Status     string     `json:"status,omitempty"`
	Draws      []string   `json:"draws,omitempty"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds a batch of results.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions,omitempty"`
	Games     []*JSONGame     `json:"games,omitempty"`
}

// ResultToJSON converts a position analysis to JSON format.
func ResultToJSON(result worker.ProcessResult) *JSONPosition {
	pos := &JSONPosition{
		Index:     result.Index,
		FEN:       result.FEN,
		Divide:    result.Divide,
		Duplicate: result.Duplicate,
	}
	if result.Depth > 0 {
		nodes := result.Nodes
		pos.Depth = result.Depth
		pos.Nodes = &nodes
	}
	if result.Error != nil {
		pos.Error = result.Error.Error()
	}
	if result.State != nil {
		pos.FEN = result.State.Board
		pos.SideToMove = result.State.SideToMove
		pos.Message = result.State.Message
		pos.AllowedMoves = result.State.AllowedMoves
	}
	return pos
}

// GameToJSON converts a replayed game to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	history := g.History()
	jg := &JSONGame{
		InitialFEN: engine.BoardToFEN(g.Start()),
		Moves:      make([]JSONMove, 0, len(history)),
		Result:     g.Result(),
		Status:     g.Status().String(),
		Draws:      drawNames(g.DrawRules()),
		PlyCount:   len(history),
		FinalFEN:   g.FEN(),
	}

	start := g.Start()
	moveNum := start.MoveNumber()
	isWhite := start.ToMove() == chess.White

	for _, ply := range history {
		jm := JSONMove{
			Color: engine.SideName(colourOf(isWhite)),
			Text:  ply.Text,
		}
		if isWhite {
			jm.MoveNumber = int(moveNum)
		}
		// Add FEN after move if requested
		if cfg.Output.AddFENs {
			jm.FEN = ply.FEN
		}
		jg.Moves = append(jg.Moves, jm)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	return jg
}

// drawNames lists the draw rules that apply, automatic draws first.
func drawNames(r game.DrawRuleResult) []string {
	var names []string
	if r.SeventyFiveMoveRule {
		names = append(names, "seventy-five-move")
	}
	if r.FivefoldRepetition {
		names = append(names, "fivefold-repetition")
	}
	if r.InsufficientMaterial {
		names = append(names, "insufficient-material")
	}
	if r.FiftyMoveRule {
		names = append(names, "fifty-move")
	}
	if r.ThreefoldRepetition {
		names = append(names, "threefold-repetition")
	}
	return names
}

func colourOf(isWhite bool) chess.Colour {
	if isWhite {
		return chess.White
	}
	return chess.Black
}
