package engine

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
)

// mustParseFEN parses fen or fails the test.
func mustParseFEN(tb testing.TB, fen string) chess.Board {
	tb.Helper()
	board, err := ParseFEN(fen)
	if err != nil {
		tb.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq converts a square name, panicking on typos in test tables.
func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square name " + name)
	}
	return s
}

// squares converts a space-separated list of square names.
func squares(names string) []chess.Square {
	var out []chess.Square
	for _, name := range strings.Fields(names) {
		out = append(out, sq(name))
	}
	return out
}

// lans renders moves in long algebraic notation, keeping their order.
func lans(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = MoveToLAN(m)
	}
	return out
}

// sortedLANs renders moves in long algebraic notation, sorted.
func sortedLANs(moves []chess.Move) []string {
	out := lans(moves)
	sort.Strings(out)
	return out
}

// movesFrom keeps the moves leaving from.
func movesFrom(moves []chess.Move, from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// playLAN plays a sequence of long algebraic moves from fen.
func playLAN(tb testing.TB, fen string, moves ...string) chess.Board {
	tb.Helper()
	board := mustParseFEN(tb, fen)
	for _, lan := range moves {
		next, err := MoveLAN(board, lan)
		if err != nil {
			tb.Fatalf("MoveLAN(%q) in %q failed: %v", lan, BoardToFEN(board), err)
		}
		board = next
	}
	return board
}
