package engine

import (
	"testing"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/testutil"
)

func TestApply_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "double push sets en passant",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black move bumps move number",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "c7c5"},
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "quiet moves advance halfmove clock",
			fen:     InitialFEN,
			moves:   []string{"g1f3", "g8f6", "f3g1"},
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 3 2",
		},
		{
			name:    "en passant removes passed pawn",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"},
			wantFEN: "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "black en passant",
			fen:     "4k3/8/8/8/3p4/8/4P3/4K3 w - - 5 30",
			moves:   []string{"e2e4", "d4e3"},
			wantFEN: "4k3/8/8/8/8/4p3/8/4K3 w - - 0 31",
		},
		{
			name:    "capture resets halfmove clock",
			fen:     "4k3/8/8/3p4/8/8/8/3RK3 w - - 7 20",
			moves:   []string{"d1d5"},
			wantFEN: "4k3/8/8/3R4/8/8/8/4K3 b - - 0 20",
		},
		{
			name:    "white castles king side",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "white castles queen side",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"e1c1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black castles both ways",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves:   []string{"e8c8"},
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:    "king move clears both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"e1f1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 1 1",
		},
		{
			name:    "rook move clears one right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"a1b1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
		},
		{
			name:    "capturing a rook clears its right",
			fen:     "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1",
			moves:   []string{"g2a8"},
			wantFEN: "B3k2r/8/8/8/8/8/8/R3K2R b KQk - 0 1",
		},
		{
			name:    "promotion replaces pawn",
			fen:     "7k/P7/8/8/8/8/8/7K w - - 0 1",
			moves:   []string{"a7a8=N"},
			wantFEN: "N6k/8/8/8/8/8/8/7K b - - 0 1",
		},
		{
			name:    "capture promotion",
			fen:     "1n5k/P7/8/8/8/8/8/7K w - - 3 9",
			moves:   []string{"a7b8=Q"},
			wantFEN: "1Q5k/8/8/8/8/8/8/7K b - - 0 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := playLAN(t, tt.fen, tt.moves...)
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestApply_Rejections(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
	}{
		{"pinned knight", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "e2", "c3"},
		{"king into check", "4k3/8/8/8/8/8/r7/4K3 w - - 0 1", "e1", "e2"},
		{"king next to king", "8/8/8/8/8/3k4/8/3K4 w - - 0 1", "d1", "d2"},
		{"ignores check", "4k3/4r3/8/8/8/8/P7/4K3 w - - 0 1", "a2", "a3"},
		{"castle through attacked square", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", "e1", "g1"},
		{"castle onto attacked square", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQ - 0 1", "e1", "g1"},
		{"castle out of check", "4k3/8/8/8/8/8/8/R3K2r w Q - 0 1", "e1", "c1"},
		{"castle blocked next to rook", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1", "c1"},
		{"castle blocked next to king", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", "e1", "g1"},
		{"castle blocked on king square", "4k3/8/8/8/8/8/8/R3K1NR w K - 0 1", "e1", "g1"},
		{"king side castle out of check", "4r1k1/8/8/8/8/8/8/4K2R w K - 0 1", "e1", "g1"},
		{"castle without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", "e1", "g1"},
		{"en passant exposes king", "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1", "e5", "d6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustParseFEN(t, tt.fen)
			move, ok := FindPseudoMove(board, sq(tt.from), sq(tt.to), chess.Empty)
			if !ok {
				t.Fatalf("FindPseudoMove(%s%s) not generated", tt.from, tt.to)
			}
			got, ok := Apply(board, move)
			testutil.AssertFalse(t, ok, "Apply accepted "+tt.from+tt.to)
			testutil.AssertEqual(t, BoardToFEN(got), tt.fen, "rejected move leaves board untouched")
		})
	}
}

func TestApply_CastleAllowedWhenQueenSideB1Attacked(t *testing.T) {
	board := mustParseFEN(t, "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	next := playLAN(t, BoardToFEN(board), "e1c1")
	testutil.AssertEqual(t, BoardToFEN(next), "1r2k3/8/8/8/8/8/8/2KR4 b - - 1 1")
}

func TestApply_PinnedPieceHasNoLegalMoves(t *testing.T) {
	board := mustParseFEN(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	legal := LegalMoves(board)
	testutil.AssertEqual(t, len(movesFrom(legal, sq("e2"))), 0)
	testutil.AssertEqual(t, sortedLANs(legal), []string{"e1d1", "e1d2", "e1f1", "e1f2"})
}

func TestApply_SetsInCheck(t *testing.T) {
	board := playLAN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8")
	testutil.AssertTrue(t, board.InCheck(), "black is in check after Ra8")
	testutil.AssertEqual(t, board.ToMove(), chess.Black)

	board = playLAN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a7")
	testutil.AssertFalse(t, board.InCheck(), "no check after Ra7")
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	board := NewInitialBoard()
	before := BoardToFEN(board)
	for _, m := range GeneratePseudoMoves(board) {
		Apply(board, m)
	}
	testutil.AssertEqual(t, BoardToFEN(board), before)
}

func TestApply_PseudoMovesCastlingRightsNeverGrow(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range fens {
		board := mustParseFEN(t, fen)
		for _, m := range LegalMoves(board) {
			next, _ := Apply(board, m)
			if next.Castling()&^board.Castling() != 0 {
				t.Errorf("%s in %q gained castling rights: %04b -> %04b",
					MoveToLAN(m), fen, board.Castling(), next.Castling())
			}
		}
	}
}
