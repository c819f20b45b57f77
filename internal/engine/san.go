package engine

import (
	"fmt"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// CastleSide selects a castling move in SAN.
type CastleSide int8

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// SANDescriptor is the parsed form of SAN text. FromFile and FromRank are -1
// when the text does not disambiguate by them.
type SANDescriptor struct {
	Piece     chess.Piece
	FromFile  int
	FromRank  int
	Capture   bool
	To        chess.Square
	Promotion chess.Piece
	Castle    CastleSide
}

// sanPatterns are tried in order; the first whose length and character
// classes match wins. Classes: p piece letter, f file, r rank, x and = literal.
var sanPatterns = [...]string{
	"pfrxfr", // Rc5xd5
	"pfrfr",  // Rc5d5
	"prxfr",  // Q5xd4
	"prfr",   // Q5d4
	"pfxfr",  // Rcxd5
	"pffr",   // Rcd5
	"pxfr",   // Bxe2
	"pfr",    // Be2
	"fxfr=p", // exf8=Q
	"fxfr",   // fxe4
	"fr=p",   // e8=Q
	"fr",     // e4
}

// ParseSAN parses standard algebraic notation into a descriptor. Check and
// mate suffixes are not accepted.
func ParseSAN(san string) (SANDescriptor, bool) {
	switch san {
	case "O-O":
		return SANDescriptor{Piece: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: Kingside}, true
	case "O-O-O":
		return SANDescriptor{Piece: chess.King, FromFile: -1, FromRank: -1, To: chess.NoSquare, Castle: Queenside}, true
	}

	for _, pattern := range sanPatterns {
		if matchesSANPattern(san, pattern) {
			return buildSANDescriptor(san, pattern), true
		}
	}
	return SANDescriptor{}, false
}

func matchesSANPattern(san, pattern string) bool {
	if len(san) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		c := san[i]
		switch pattern[i] {
		case 'p':
			if c == 'P' || chess.PieceFromLetter(c) == chess.Empty {
				return false
			}
		case 'f':
			if c < 'a' || c > 'h' {
				return false
			}
		case 'r':
			if c < '1' || c > '8' {
				return false
			}
		default:
			if c != pattern[i] {
				return false
			}
		}
	}
	return true
}

// buildSANDescriptor extracts the fields of san, which matched pattern. The
// last file and rank are the destination; any earlier ones disambiguate.
func buildSANDescriptor(san, pattern string) SANDescriptor {
	d := SANDescriptor{Piece: chess.Pawn, FromFile: -1, FromRank: -1}
	var files, ranks []int
	promoting := false

	for i := 0; i < len(pattern); i++ {
		c := san[i]
		switch pattern[i] {
		case 'p':
			if promoting {
				d.Promotion = chess.PieceFromLetter(c)
			} else {
				d.Piece = chess.PieceFromLetter(c)
			}
		case 'f':
			files = append(files, int(c-chess.ColBase))
		case 'r':
			ranks = append(ranks, int(c-chess.RankBase))
		case 'x':
			d.Capture = true
		case '=':
			promoting = true
		}
	}

	d.To = chess.SquareAt(files[len(files)-1], ranks[len(ranks)-1])
	if len(files) == 2 {
		d.FromFile = files[0]
	}
	if len(ranks) == 2 {
		d.FromRank = ranks[0]
	}
	return d
}

// sanCandidate is a legal move matching a descriptor and its successor.
type sanCandidate struct {
	move  chess.Move
	board chess.Board
}

// sanCandidates returns up to limit legal moves matching d, searching source
// squares in increasing index order. A limit of 0 means no limit.
func sanCandidates(board chess.Board, d SANDescriptor, limit int) []sanCandidate {
	side := board.ToMove()
	var found []sanCandidate

	try := func(from, to chess.Square) bool {
		move, ok := FindPseudoMove(board, from, to, d.Promotion)
		if !ok {
			return false
		}
		next, ok := Apply(board, move)
		if !ok {
			return false
		}
		found = append(found, sanCandidate{move: move, board: next})
		return limit > 0 && len(found) >= limit
	}

	if d.Castle != NoCastle {
		right := castleRight(side, d.Castle)
		for _, c := range castlings {
			if c.right == right {
				try(c.kingFrom, c.kingTo)
				break
			}
		}
		return found
	}

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if board.ColourAt(from) != side || board.PieceAt(from) != d.Piece {
			continue
		}
		if d.FromFile >= 0 && from.File() != d.FromFile {
			continue
		}
		if d.FromRank >= 0 && from.Rank() != d.FromRank {
			continue
		}
		if try(from, d.To) {
			break
		}
	}
	return found
}

func castleRight(colour chess.Colour, side CastleSide) chess.CastlingRights {
	switch {
	case colour == chess.White && side == Kingside:
		return chess.WhiteKingside
	case colour == chess.White:
		return chess.WhiteQueenside
	case side == Kingside:
		return chess.BlackKingside
	default:
		return chess.BlackQueenside
	}
}

// ResolveSAN plays the first legal move matching d, trying source squares
// in increasing index order. Several matching moves are not reported as
// ambiguous; use ResolveSANStrict for that.
func ResolveSAN(board chess.Board, d SANDescriptor) (chess.Board, bool) {
	found := sanCandidates(board, d, 1)
	if len(found) == 0 {
		return board, false
	}
	return found[0].board, true
}

// ResolveSANStrict plays the single legal move matching d. It fails with
// errors.ErrAmbiguousMove when more than one move matches, and with
// errors.ErrIllegalMove when none does or the capture marker is wrong.
func ResolveSANStrict(board chess.Board, d SANDescriptor) (chess.Board, error) {
	found := sanCandidates(board, d, 0)
	switch {
	case len(found) == 0:
		return board, errors.ErrIllegalMove
	case len(found) > 1:
		return board, fmt.Errorf("%w: %d candidates", errors.ErrAmbiguousMove, len(found))
	}
	if d.Castle == NoCastle && found[0].move.IsCapture() != d.Capture {
		return board, fmt.Errorf("%w: capture marker does not match", errors.ErrIllegalMove)
	}
	return found[0].board, nil
}

// MoveSAN parses san and plays the first legal move it matches.
func MoveSAN(board chess.Board, san string) (chess.Board, error) {
	d, ok := ParseSAN(san)
	if !ok {
		return board, &errors.MoveError{Err: fmt.Errorf("%w: not standard algebraic notation", errors.ErrMalformedInput), MoveText: san}
	}
	next, ok := ResolveSAN(board, d)
	if !ok {
		return board, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: san}
	}
	return next, nil
}

// MoveSANStrict parses san and plays the unique legal move it matches.
func MoveSANStrict(board chess.Board, san string) (chess.Board, error) {
	d, ok := ParseSAN(san)
	if !ok {
		return board, &errors.MoveError{Err: fmt.Errorf("%w: not standard algebraic notation", errors.ErrMalformedInput), MoveText: san}
	}
	next, err := ResolveSANStrict(board, d)
	if err != nil {
		return board, &errors.MoveError{Err: err, MoveText: san}
	}
	return next, nil
}
