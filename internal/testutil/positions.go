package testutil

import "strings"

// Well-known test positions.
const (
	InitialFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

	// FoolsMateFEN is the position after 1. f3 e5 2. g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// StalemateFEN has black to move with no legal moves and no check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// PerftPosition is a position with reference perft node counts.
type PerftPosition struct {
	Name  string
	FEN   string
	Nodes []uint64 // indexed by depth-1
}

// PerftPositions are the reference counts from the chess programming wiki
// perft results page, truncated to depths that run quickly.
var PerftPositions = []PerftPosition{
	{Name: "initial", FEN: InitialFEN, Nodes: []uint64{20, 400, 8902}},
	{Name: "kiwipete", FEN: KiwipeteFEN, Nodes: []uint64{48, 2039}},
	{Name: "position 3", FEN: Position3FEN, Nodes: []uint64{14, 191, 2812}},
	{Name: "position 4", FEN: Position4FEN, Nodes: []uint64{6, 264}},
	{Name: "position 5", FEN: Position5FEN, Nodes: []uint64{44, 1486}},
}

// Moves splits a space-separated move list.
func Moves(s string) []string {
	return strings.Fields(s)
}
