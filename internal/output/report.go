// Package output renders position reports as text or JSON.
package output

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// LegalityCheck is the answer to a single from/to query.
type LegalityCheck struct {
	From  chess.Square
	To    chess.Square
	Legal bool
}

// Report describes one position: its encodings, the generated moves for
// the side to move and an optional legality query.
type Report struct {
	Index  int
	Source string // Input text the position came from
	GameID string // Snapshot ID, when saved or loaded
	State  string
	ToMove chess.Colour
	Moves  []chess.Move
	Check  *LegalityCheck
	Err    error
}

// FEN returns the report's position in standard FEN, or "" when the state
// is not valid.
func (r *Report) FEN() string {
	board, ok := boardFromState(r.State)
	if !ok {
		return ""
	}
	return notation.FormatFEN(board, r.ToMove)
}

// boardFromState rebuilds a board keeping piece kinds.
func boardFromState(state string) (*chess.Board, bool) {
	if notation.ValidateState(state) != nil {
		return nil, false
	}
	board := chess.NewBoard()
	for i := 0; i < chess.NumSquares; i++ {
		if p, ok := notation.PieceAt(state, chess.Square(i)); ok {
			board.Place(chess.Square(i), p)
		}
	}
	return board, true
}

// Diagram draws the state as an 8x8 grid, rank 8 at the top.
func Diagram(state string) string {
	var sb strings.Builder
	for row := chess.LastRow; row >= chess.FirstRow; row-- {
		sb.WriteByte(byte('1' + row))
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			sb.WriteByte(' ')
			if p, ok := notation.PieceAt(state, chess.NewSquare(row, col)); ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func moveNames(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
