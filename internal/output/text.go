package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/game"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// writeResultText writes tag pairs describing the position followed by
// its legal moves and, when present, the perft breakdown.
func writeResultText(w io.Writer, result worker.ProcessResult, cfg *config.Config) error {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	fen := result.FEN
	if result.State != nil {
		fen = result.State.Board
	}
	writeTag(ow, "Index", fmt.Sprint(result.Index+1))
	writeTag(ow, "FEN", fen)

	switch {
	case result.Error != nil:
		writeTag(ow, "Error", result.Error.Error())
	case result.Duplicate:
		writeTag(ow, "Duplicate", "true")
	case result.State != nil:
		writeTag(ow, "SideToMove", result.State.SideToMove)
		if result.State.Message != "" {
			writeTag(ow, "Status", result.State.Message)
		}
		if result.Depth > 0 {
			writeTag(ow, "Perft", fmt.Sprint(result.Nodes))
		}
		ow.NewLine()
		for _, mv := range result.State.AllowedMoves {
			ow.Write(mv.LAN)
		}
		if len(result.State.AllowedMoves) > 0 {
			ow.NewLine()
		}
		writeDivide(ow, result.Divide)
	}

	// Blank line between results
	ow.NewLine()
	return ow.Err()
}

// writeDivide writes one "move: nodes" line per root move, sorted by move.
func writeDivide(ow *OutputWriter, divide map[string]uint64) {
	if len(divide) == 0 {
		return
	}
	moves := make([]string, 0, len(divide))
	for mv := range divide {
		moves = append(moves, mv)
	}
	sort.Strings(moves)
	for _, mv := range moves {
		ow.Write(fmt.Sprintf("%s: %d", mv, divide[mv]))
		ow.NewLine()
	}
}

// writeGameText writes a game as tag pairs and a numbered move list.
func writeGameText(w io.Writer, g *game.Game, cfg *config.Config) error {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	result := g.Result()

	start := g.Start()
	writeTag(ow, "FEN", engine.BoardToFEN(start))
	writeTag(ow, "Result", result)
	writeTag(ow, "PlyCount", fmt.Sprint(len(g.History())))
	if status := g.Status().String(); status != "" {
		writeTag(ow, "Status", status)
	}
	if draws := drawNames(g.DrawRules()); len(draws) > 0 {
		writeTag(ow, "Draw", strings.Join(draws, " "))
	}

	// Blank line between tags and moves
	ow.NewLine()

	moveNum := start.MoveNumber()
	isWhite := start.ToMove() == chess.White
	for i, ply := range g.History() {
		// Output move number
		if cfg.Output.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		ow.Write(ply.Text)
		if cfg.Output.AddFENs {
			ow.Write("{" + ply.FEN + "}")
		}

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.Write(result)
	ow.NewLine()

	// Blank line between games
	ow.NewLine()
	return ow.Err()
}

func writeTag(ow *OutputWriter, name, value string) {
	ow.print(fmt.Sprintf("[%s \"%s\"]\n", name, escapeTagValue(value)))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
