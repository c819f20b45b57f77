package engine

import (
	"testing"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/testutil"
)

func TestGeneratePseudoMoves_InitialOrder(t *testing.T) {
	board := NewInitialBoard()
	want := []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1a3", "b1c3", "g1f3", "g1h3",
	}
	testutil.AssertEqual(t, lans(GeneratePseudoMoves(board)), want)
	testutil.AssertEqual(t, lans(LegalMoves(board)), want)
}

func TestGeneratePseudoMoves_BlackInitial(t *testing.T) {
	board := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	moves := GeneratePseudoMoves(board)
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, lans(moves[:2]), []string{"b8a6", "b8c6"})
}

func TestGeneratePseudoMoves_Deterministic(t *testing.T) {
	board := mustParseFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	testutil.AssertEqual(t, lans(GeneratePseudoMoves(board)), lans(GeneratePseudoMoves(board)))
}

func TestGeneratePseudoMoves_Promotion(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "push",
			fen:  "7k/P7/8/8/8/8/8/7K w - - 0 1",
			from: "a7",
			want: []string{"a7a8=N", "a7a8=B", "a7a8=R", "a7a8=Q"},
		},
		{
			name: "capture then push",
			fen:  "1n5k/P7/8/8/8/8/8/7K w - - 0 1",
			from: "a7",
			want: []string{
				"a7b8=N", "a7b8=B", "a7b8=R", "a7b8=Q",
				"a7a8=N", "a7a8=B", "a7a8=R", "a7a8=Q",
			},
		},
		{
			name: "black push",
			fen:  "7k/8/8/8/8/8/p7/7K b - - 0 1",
			from: "a2",
			want: []string{"a2a1=N", "a2a1=B", "a2a1=R", "a2a1=Q"},
		},
		{
			name: "blocked",
			fen:  "n6k/P7/8/8/8/8/8/7K w - - 0 1",
			from: "a7",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustParseFEN(t, tt.fen)
			moves := movesFrom(GeneratePseudoMoves(board), sq(tt.from))
			if len(tt.want) == 0 {
				testutil.AssertEqual(t, len(moves), 0)
				return
			}
			testutil.AssertEqual(t, lans(moves), tt.want)
			for _, m := range moves {
				testutil.AssertTrue(t, m.IsPromotion(), MoveToLAN(m))
				testutil.AssertTrue(t, m.Flags.Has(chess.FlagPawnMove), MoveToLAN(m))
			}
		})
	}
}

func TestGeneratePseudoMoves_PawnPushes(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"single and double", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e2", []string{"e2e3", "e2e4"}},
		{"double blocked", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e2e3"}},
		{"single blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", nil},
		{"not on home rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", []string{"e3e4"}},
		{"black double", "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7", []string{"d7d6", "d7d5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustParseFEN(t, tt.fen)
			moves := movesFrom(GeneratePseudoMoves(board), sq(tt.from))
			if len(tt.want) == 0 {
				testutil.AssertEqual(t, len(moves), 0)
				return
			}
			testutil.AssertEqual(t, lans(moves), tt.want)
		})
	}
}

func TestGeneratePseudoMoves_DoublePushFlag(t *testing.T) {
	board := NewInitialBoard()
	for _, m := range GeneratePseudoMoves(board) {
		isDouble := m.From.Rank() == 1 && m.To.Rank() == 3
		testutil.AssertEqual(t, m.Flags.Has(chess.FlagDoublePawnPush), isDouble, MoveToLAN(m))
	}
}

func TestGeneratePseudoMoves_CastlingAlwaysEmitted(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
		{"blocked", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1"},
		{"in check", "r3k2r/8/8/8/8/8/8/R3K1rR w KQkq - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := GeneratePseudoMoves(mustParseFEN(t, tt.fen))
			var castles []string
			for _, m := range moves {
				if m.IsCastle() {
					castles = append(castles, MoveToLAN(m))
				}
			}
			testutil.AssertEqual(t, castles, []string{"e1g1", "e1c1"})
		})
	}
}

func TestGeneratePseudoMoves_NoRightsNoCastling(t *testing.T) {
	moves := GeneratePseudoMoves(mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1"))
	for _, m := range moves {
		testutil.AssertFalse(t, m.IsCastle(), MoveToLAN(m))
	}
}

func TestGeneratePseudoMoves_EnPassant(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "one capturer",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			want: []string{"e5f6"},
		},
		{
			name: "two capturers",
			fen:  "4k3/8/8/3PpP2/8/8/8/4K3 w - e6 0 1",
			want: []string{"d5e6", "f5e6"},
		},
		{
			name: "black captures",
			fen:  "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
			want: []string{"d4e3"},
		},
		{
			name: "edge file",
			fen:  "4k3/8/8/Pp6/8/8/8/4K3 w - b6 0 1",
			want: []string{"a5b6"},
		},
		{
			name: "occupied target",
			fen:  "4k3/8/4n3/3P4/8/8/8/4K3 w - e6 0 1",
			want: nil,
		},
		{
			name: "no target",
			fen:  "4k3/8/8/3PpP2/8/8/8/4K3 w - - 0 1",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range GeneratePseudoMoves(mustParseFEN(t, tt.fen)) {
				if m.Flags.Has(chess.FlagEnPassant) {
					testutil.AssertTrue(t, m.IsCapture(), "en passant is a capture")
					got = append(got, MoveToLAN(m))
				}
			}
			if len(tt.want) == 0 {
				testutil.AssertEqual(t, len(got), 0)
				return
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestGeneratePseudoMoves_SlidersStopAtBlockers(t *testing.T) {
	board := mustParseFEN(t, "4k3/8/8/8/1p6/8/1R1P4/4K3 w - - 0 1")
	got := sortedLANs(movesFrom(GeneratePseudoMoves(board), sq("b2")))
	want := []string{"b2a2", "b2b1", "b2b3", "b2b4", "b2c2"}
	testutil.AssertEqual(t, got, want)
}
