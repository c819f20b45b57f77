package worker

import (
	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/generator"
	"github.com/lgbarn/chess-movegen-go/internal/hashing"
)

// AnalysisOptions selects what an analyser computes for each position.
type AnalysisOptions struct {
	PerftDepth int  // 0 disables perft
	Divide     bool // per-move breakdown alongside perft
	// Duplicates is indexed by WorkItem.Index; marked items are reported as
	// duplicates and not analysed. See MarkDuplicates.
	Duplicates []bool
}

// MarkDuplicates checks fens against d in input order and reports which
// ones repeat an earlier position, so the first occurrence is always the
// one kept. Malformed FENs are never marked.
func MarkDuplicates(fens []string, d *hashing.DuplicateDetector) []bool {
	dups := make([]bool, len(fens))
	for i, fen := range fens {
		board, err := engine.ParseFEN(fen)
		if err != nil {
			continue
		}
		dups[i] = d.CheckAndAdd(board)
	}
	return dups
}

// NewAnalyzer returns a ProcessFunc that parses each FEN and reports its
// state, optionally with a perft count.
func NewAnalyzer(opts AnalysisOptions) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, FEN: item.FEN}

		board, err := engine.ParseFEN(item.FEN)
		if err != nil {
			result.Error = errors.Wrapf(err, "position %d", item.Index+1)
			return result
		}

		if item.Index >= 0 && item.Index < len(opts.Duplicates) && opts.Duplicates[item.Index] {
			result.Duplicate = true
			return result
		}

		state := generator.NewState(board)
		result.State = &state
		if opts.PerftDepth > 0 {
			result.Depth = opts.PerftDepth
			result.Nodes = engine.Perft(board, opts.PerftDepth)
			if opts.Divide {
				result.Divide = engine.Divide(board, opts.PerftDepth)
			}
		}
		return result
	}
}
