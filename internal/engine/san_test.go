package engine

import (
	"testing"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/testutil"
)

func TestParseSAN(t *testing.T) {
	tests := []struct {
		san  string
		want SANDescriptor
	}{
		{"e4", SANDescriptor{Piece: chess.Pawn, FromFile: -1, FromRank: -1, To: sq("e4")}},
		{"Nf3", SANDescriptor{Piece: chess.Knight, FromFile: -1, FromRank: -1, To: sq("f3")}},
		{"Bxe2", SANDescriptor{Piece: chess.Bishop, FromFile: -1, FromRank: -1, Capture: true, To: sq("e2")}},
		{"exd5", SANDescriptor{Piece: chess.Pawn, FromFile: 4, FromRank: -1, Capture: true, To: sq("d5")}},
		{"e8=Q", SANDescriptor{Piece: chess.Pawn, FromFile: -1, FromRank: -1, To: sq("e8"), Promotion: chess.Queen}},
		{"exf8=N", SANDescriptor{Piece: chess.Pawn, FromFile: 4, FromRank: -1, Capture: true, To: sq("f8"), Promotion: chess.Knight}},
		{"Rcd5", SANDescriptor{Piece: chess.Rook, FromFile: 2, FromRank: -1, To: sq("d5")}},
		{"Rcxd5", SANDescriptor{Piece: chess.Rook, FromFile: 2, FromRank: -1, Capture: true, To: sq("d5")}},
		{"R1a3", SANDescriptor{Piece: chess.Rook, FromFile: -1, FromRank: 0, To: sq("a3")}},
		{"Q5xd4", SANDescriptor{Piece: chess.Queen, FromFile: -1, FromRank: 4, Capture: true, To: sq("d4")}},
		{"Rc5d5", SANDescriptor{Piece: chess.Rook, FromFile: 2, FromRank: 4, To: sq("d5")}},
		{"Rc5xd5", SANDescriptor{Piece: chess.Rook, FromFile: 2, FromRank: 4, Capture: true, To: sq("d5")}},
		{"Kh1", SANDescriptor{Piece: chess.King, FromFile: -1, FromRank: -1, To: sq("h1")}},
		{"O-O", SANDescriptor{Piece: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: Kingside}},
		{"O-O-O", SANDescriptor{Piece: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: Queenside}},
	}

	for _, tt := range tests {
		t.Run(tt.san, func(t *testing.T) {
			got, ok := ParseSAN(tt.san)
			testutil.AssertTrue(t, ok, "ParseSAN ok")
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseSAN_Rejects(t *testing.T) {
	for _, san := range []string{"", "e9", "i4", "Pe4", "Nf3+", "Qh7#", "xe4", "e8Q", "0-0", "O-O-O-O", "Nf"} {
		t.Run(san, func(t *testing.T) {
			_, ok := ParseSAN(san)
			testutil.AssertFalse(t, ok, "ParseSAN("+san+")")
		})
	}
}

func TestMoveSAN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		san     string
		wantFEN string
	}{
		{
			name:    "pawn push",
			fen:     InitialFEN,
			san:     "e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "knight",
			fen:     InitialFEN,
			san:     "Nf3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "pawn capture",
			fen:     "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			san:     "exd5",
			wantFEN: "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		},
		{
			name:    "en passant",
			fen:     "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			san:     "exd6",
			wantFEN: "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "promotion",
			fen:     promotionFEN,
			san:     "e8=Q",
			wantFEN: "4Q3/8/8/8/8/8/k7/4K3 b - - 0 1",
		},
		{
			name:    "white king side castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			san:     "O-O",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queen side castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			san:     "O-O-O",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black king side castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			san:     "O-O",
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:    "ambiguous knights take first by square index",
			fen:     "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1",
			san:     "Nd2",
			wantFEN: "4k3/8/8/8/8/8/3N4/1N2K3 b - - 1 1",
		},
		{
			name:    "file disambiguation",
			fen:     "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1",
			san:     "Nbd2",
			wantFEN: "4k3/8/8/8/8/5N2/3N4/4K3 b - - 1 1",
		},
		{
			name:    "rank disambiguation",
			fen:     "4k3/8/8/8/R7/8/8/R3K3 w - - 0 1",
			san:     "R1a3",
			wantFEN: "4k3/8/8/8/R7/R7/8/4K3 b - - 1 1",
		},
		{
			name:    "pinned candidate skipped",
			fen:     "4k3/4r3/8/8/8/8/4N3/2N1K3 w - - 0 1",
			san:     "Nd4",
			wantFEN: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := MoveSAN(mustParseFEN(t, tt.fen), tt.san)
			if tt.wantFEN == "" {
				if !errors.Is(err, errors.ErrIllegalMove) {
					t.Fatalf("MoveSAN(%q) error = %v, want ErrIllegalMove", tt.san, err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, BoardToFEN(next), tt.wantFEN)
		})
	}
}

func TestMoveSAN_PinnedFallsThroughToLegalCandidate(t *testing.T) {
	// The e2 knight is pinned; Nc3 must come from b1.
	board := mustParseFEN(t, "4k3/4r3/8/8/8/8/4N3/1N2K3 w - - 0 1")
	next, err := MoveSAN(board, "Nc3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, BoardToFEN(next), "4k3/4r3/8/8/8/2N5/4N3/4K3 b - - 1 1")
}

func TestMoveSAN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		san     string
		wantErr error
	}{
		{"unparseable", "Nf3+", errors.ErrMalformedInput},
		{"blocked king", "Ke2", errors.ErrIllegalMove},
		{"no such piece", "Qh5", errors.ErrIllegalMove},
		{"castle blocked", "O-O", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewInitialBoard()
			got, err := MoveSAN(board, tt.san)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MoveSAN(%q) error = %v, want %v", tt.san, err, tt.wantErr)
			}
			testutil.AssertEqual(t, BoardToFEN(got), InitialFEN)
		})
	}
}

func TestMoveSANStrict(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		san     string
		wantErr error
	}{
		{"unique", InitialFEN, "Nf3", nil},
		{"ambiguous knights", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Nd2", errors.ErrAmbiguousMove},
		{"disambiguated", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "Nfd2", nil},
		{"ambiguous rooks", "4k3/8/8/8/R7/8/8/R3K3 w - - 0 1", "Ra3", errors.ErrAmbiguousMove},
		{"pinned twin is not ambiguous", "4k3/4r3/8/8/8/8/4N3/1N2K3 w - - 0 1", "Nc3", nil},
		{"capture marker on quiet move", InitialFEN, "Nxf3", errors.ErrIllegalMove},
		{"missing capture marker", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "ed5", errors.ErrMalformedInput},
		{"no candidate", InitialFEN, "Nd4", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MoveSANStrict(mustParseFEN(t, tt.fen), tt.san)
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MoveSANStrict(%q) error = %v, want %v", tt.san, err, tt.wantErr)
			}
		})
	}
}

func TestResolveSANStrict_CaptureMarker(t *testing.T) {
	board := mustParseFEN(t, "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	d, ok := ParseSAN("Rd5")
	testutil.AssertTrue(t, ok, "ParseSAN")

	_, err := ResolveSANStrict(board, d)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove, "capture without x")

	next, ok := ResolveSAN(board, d)
	testutil.AssertTrue(t, ok, "first-match resolution ignores the marker")
	testutil.AssertEqual(t, BoardToFEN(next), "4k3/8/8/3R4/8/8/8/4K3 b - - 0 1")
}
