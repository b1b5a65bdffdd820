package notation

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN reads a standard FEN string, whose first rank segment is rank 8.
// Only the placement and side-to-move fields are read; castling, en passant
// and clock fields are accepted and ignored. Side to move defaults to White.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, errors.Wrap(errors.ErrMalformedNotation, "empty FEN string")
	}

	board, err := parseStrict(parts[0], true)
	if err != nil {
		return nil, chess.White, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = chess.Black
		default:
			return nil, chess.White, errors.Wrapf(errors.ErrMalformedNotation, "invalid side to move %q", parts[1])
		}
	}
	return board, toMove, nil
}

// FormatFEN writes a standard FEN string. Rows are emitted from row 7 down,
// which is the only difference from FormatPlacement. Castling and en passant
// are not modelled and always print as "-"; clocks print as "0 1".
func FormatFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	for row := chess.LastRow; row >= chess.FirstRow; row-- {
		writeRow(&sb, board, row)
		if row > chess.FirstRow {
			sb.WriteByte('/')
		}
	}
	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
