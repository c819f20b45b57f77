// Package engine provides chess move generation, validation and board
// transitions over immutable chess.Board values.
package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// castlingLetters lists castling rights in their canonical FEN order.
var castlingLetters = []struct {
	letter byte
	right  chess.CastlingRights
}{
	{'K', chess.WhiteKingside},
	{'Q', chess.WhiteQueenside},
	{'k', chess.BlackKingside},
	{'q', chess.BlackQueenside},
}

// ConvertFENCharToPiece converts a FEN character to a colour and piece type.
// It returns chess.Empty for characters that do not name a piece.
func ConvertFENCharToPiece(c byte) (chess.Colour, chess.Piece) {
	piece := chess.PieceFromLetter(byte(unicode.ToUpper(rune(c))))
	if piece == chess.Empty {
		return chess.NoColour, chess.Empty
	}
	if unicode.IsLower(rune(c)) {
		return chess.Black, piece
	}
	return chess.White, piece
}

// PieceToFENChar returns the FEN letter for a coloured piece.
func PieceToFENChar(colour chess.Colour, piece chess.Piece) byte {
	letter := piece.Letter()
	if colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN creates a board from a FEN string. Every failure wraps
// errors.ErrMalformedInput in an *errors.FENError naming the bad field.
func ParseFEN(fen string) (chess.Board, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != fenFields {
		return chess.Board{}, fenError(fen, "field count", strconv.Itoa(len(parts)))
	}

	bl := chess.NewBuilder()

	if err := parsePiecePositions(bl, parts[0]); err != nil {
		return chess.Board{}, fenError(fen, "placement", err.Error())
	}

	switch parts[1] {
	case "w":
		bl.SetToMove(chess.White)
	case "b":
		bl.SetToMove(chess.Black)
	default:
		return chess.Board{}, fenError(fen, "side to move", parts[1])
	}

	rights, ok := parseCastlingRights(parts[2])
	if !ok {
		return chess.Board{}, fenError(fen, "castling", parts[2])
	}
	bl.SetCastling(rights)

	if parts[3] != "-" {
		sq, ok := chess.ParseSquare(parts[3])
		if !ok || sq.Rank() != enPassantRank(parts[1]) {
			return chess.Board{}, fenError(fen, "en passant", parts[3])
		}
		bl.SetEnPassant(sq)
	}

	halfmove, ok := parseClock(parts[4])
	if !ok {
		return chess.Board{}, fenError(fen, "halfmove clock", parts[4])
	}
	bl.SetHalfmoveClock(halfmove)

	fullmove, ok := parseClock(parts[5])
	if !ok {
		return chess.Board{}, fenError(fen, "fullmove number", parts[5])
	}
	bl.SetMoveNumber(fullmove)

	board := bl.Board()
	return bl.SetInCheck(IsInCheck(board, board.ToMove())).Board(), nil
}

// enPassantRank returns the 0-based rank an en passant target must lie on
// for the given side-to-move field.
func enPassantRank(side string) int {
	if side == "w" {
		return 5
	}
	return 2
}

// fenError builds the error returned for a malformed FEN field.
func fenError(fen, field, value string) error {
	return &errors.FENError{Err: errors.ErrMalformedInput, FEN: fen, Field: field, Value: value}
}

// rankError is a placement problem; ParseFEN reports its text as the value.
type rankError string

func (e rankError) Error() string { return string(e) }

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(bl *chess.Builder, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return rankError("expected 8 ranks, got " + strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return rankError("rank " + strconv.Itoa(rank+1) + " overflows")
				}
				continue
			}
			colour, piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return rankError("invalid piece character " + strconv.QuoteRune(rune(c)))
			}
			if file >= chess.BoardSize {
				return rankError("rank " + strconv.Itoa(rank+1) + " overflows")
			}
			bl.Set(chess.SquareAt(file, rank), colour, piece)
			file++
		}
		if file != chess.BoardSize {
			return rankError("rank " + strconv.Itoa(rank+1) + " has " + strconv.Itoa(file) + " files")
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, bool) {
	if field == "-" {
		return chess.NoCastling, true
	}
	if field == "" {
		return chess.NoCastling, false
	}

	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		found := false
		for _, cl := range castlingLetters {
			if field[i] == cl.letter {
				rights |= cl.right
				found = true
				break
			}
		}
		if !found {
			return chess.NoCastling, false
		}
	}
	return rights, true
}

// parseClock parses a non-negative decimal counter.
func parseClock(field string) (uint, bool) {
	if field == "" {
		return 0, false
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock()), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.MoveNumber()), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	emptyCount := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if board.IsEmpty(sq) {
			emptyCount++
		} else {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENChar(board.ColourAt(sq), board.PieceAt(sq)))
		}
		if sq.File() == chess.BoardSize-1 {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			if sq < chess.H1 {
				sb.WriteByte('/')
			}
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board chess.Board) {
	if board.ToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board chess.Board) {
	rights := board.Castling()
	if rights == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, cl := range castlingLetters {
		if rights.Has(cl.right) {
			sb.WriteByte(cl.letter)
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board chess.Board) {
	sb.WriteString(board.EnPassant().String())
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() chess.Board {
	board, err := ParseFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return board
}
