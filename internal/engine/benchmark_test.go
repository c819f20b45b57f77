package engine

import "testing"

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkParseFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParseFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustParseFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkGeneratePseudoMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustParseFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GeneratePseudoMoves(board)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustParseFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	board := mustParseFEN(b, benchFENs["Complex"])
	moves := GeneratePseudoMoves(board)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Apply(board, moves[i%len(moves)])
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}

func BenchmarkMoveSAN(b *testing.B) {
	board := NewInitialBoard()
	for i := 0; i < b.N; i++ {
		MoveSAN(board, "Nf3")
	}
}
