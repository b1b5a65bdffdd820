// Package notation converts boards to and from their text forms: the
// placement string used at setup, standard FEN, the fixed 64-character
// state string, and the host framework's packed piece tags.
package notation

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// StartPlacement is the standard starting layout, first segment on row 0
// (White's back rank).
const StartPlacement = "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr"

// FieldSeparator ends the placement field of a full notation string.
const FieldSeparator = ' '

// stopInfo records where and why a placement scan ended early.
type stopInfo struct {
	offset   int
	char     byte
	expected string
}

// scanPlacement walks text left to right, placing pieces. When flip is set
// the first segment lands on row 7 instead of row 0. Scanning ends at the
// first character it cannot apply; the returned stopInfo is nil when the
// whole text was consumed.
func scanPlacement(text string, flip bool, strict bool) (*chess.Board, *stopInfo) {
	board := chess.NewBoard()
	row, col := 0, 0

	target := func(r int) int {
		if flip {
			return chess.LastRow - r
		}
		return r
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '/':
			if strict && col != chess.BoardSize {
				return board, &stopInfo{offset: i, char: c, expected: "8 squares before '/'"}
			}
			if row == chess.LastRow {
				return board, &stopInfo{offset: i, char: c, expected: "at most 8 rows"}
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			if col+int(c-'0') > chess.BoardSize {
				return board, &stopInfo{offset: i, char: c, expected: "at most 8 squares per row"}
			}
			col += int(c - '0')
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return board, &stopInfo{offset: i, char: c, expected: "piece letter, digit or '/'"}
			}
			if col > chess.LastCol {
				return board, &stopInfo{offset: i, char: c, expected: "at most 8 squares per row"}
			}
			board.Place(chess.NewSquare(target(row), col), piece)
			col++
		}
	}

	if strict && (row != chess.LastRow || col != chess.BoardSize) {
		return board, &stopInfo{offset: len(text), expected: "8 complete rows"}
	}
	return board, nil
}

// ParsePlacement builds a board from a row-0-first placement string.
//
// Parsing never fails: it stops at the first character it cannot apply and
// returns the board filled so far together with the number of bytes
// consumed. This is how trailing notation fields (side to move, castling,
// clocks) are ignored. consumed == len(text) means the whole string applied.
func ParsePlacement(text string) (board *chess.Board, consumed int) {
	board, stop := scanPlacement(text, false, false)
	if stop != nil {
		return board, stop.offset
	}
	return board, len(text)
}

// ParsePlacementStrict is ParsePlacement with diagnostics. A space ends the
// placement field without error; any other unrecognized character, an
// overfull or short row, or a ninth row yields a NotationError wrapping
// ErrMalformedNotation.
func ParsePlacementStrict(text string) (*chess.Board, error) {
	return parseStrict(text, false)
}

func parseStrict(text string, flip bool) (*chess.Board, error) {
	field := text
	if i := strings.IndexByte(text, FieldSeparator); i >= 0 {
		field = text[:i]
	}
	board, stop := scanPlacement(field, flip, true)
	if stop != nil {
		return nil, &errors.NotationError{
			Err:      errors.ErrMalformedNotation,
			Input:    text,
			Offset:   stop.offset,
			Char:     stop.char,
			Expected: stop.expected,
		}
	}
	return board, nil
}

// FormatPlacement writes a board as a row-0-first placement string.
func FormatPlacement(board *chess.Board) string {
	var sb strings.Builder
	for row := chess.FirstRow; row <= chess.LastRow; row++ {
		writeRow(&sb, board, row)
		if row < chess.LastRow {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// writeRow writes one row of a placement string, compressing empty runs to digits.
func writeRow(sb *strings.Builder, board *chess.Board, row int) {
	emptyCount := 0
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		piece, ok := board.Get(row, col)
		if !ok {
			emptyCount++
			continue
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
			emptyCount = 0
		}
		sb.WriteByte(piece.Letter())
	}
	if emptyCount > 0 {
		sb.WriteByte(byte('0' + emptyCount))
	}
}
