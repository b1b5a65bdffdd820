package notation

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// StateLen is the length of a state string: one character per square.
const StateLen = chess.NumSquares

// EmptyChar marks an empty square in a state string.
const EmptyChar = '0'

// EncodeState writes the board in row-major order, one character per square:
// '0' for empty, otherwise the piece letter (uppercase White, lowercase Black).
func EncodeState(board *chess.Board) string {
	buf := make([]byte, StateLen)
	board.ForEach(func(s chess.Square, c chess.Cell) {
		if c.Occupied {
			buf[s] = c.Piece.Letter()
		} else {
			buf[s] = EmptyChar
		}
	})
	return string(buf)
}

// DecodeState rebuilds occupancy from a state string.
//
// Each character only contributes a colour: '0' is empty, '1' is White and
// '2' is Black; a piece letter is read as its colour by case. Every occupied
// square becomes a Pawn of that colour, so DecodeState(EncodeState(b))
// keeps colours but not kinds.
func DecodeState(s string) (*chess.Board, error) {
	if len(s) != StateLen {
		return nil, &errors.NotationError{
			Err:      errors.ErrMalformedState,
			Input:    s,
			Offset:   -1,
			Expected: "64 characters",
		}
	}

	board := chess.NewBoard()
	for i := 0; i < StateLen; i++ {
		c := s[i]
		var colour chess.Colour
		switch {
		case c == EmptyChar:
			continue
		case c == '1':
			colour = chess.White
		case c == '2':
			colour = chess.Black
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return nil, &errors.NotationError{
					Err:      errors.ErrMalformedState,
					Input:    s,
					Offset:   i,
					Char:     c,
					Expected: "'0', '1', '2' or a piece letter",
				}
			}
			colour = piece.Colour
		}
		board.Place(chess.Square(i), chess.ColouredPiece{Kind: chess.Pawn, Colour: colour})
	}
	return board, nil
}

// ValidateState checks that s is a 64-character encoded state: every
// character is '0' or a piece letter.
func ValidateState(s string) error {
	if len(s) != StateLen {
		return &errors.NotationError{
			Err:      errors.ErrMalformedState,
			Input:    s,
			Offset:   -1,
			Expected: "64 characters",
		}
	}
	for i := 0; i < StateLen; i++ {
		if s[i] == EmptyChar {
			continue
		}
		if _, ok := chess.PieceFromLetter(s[i]); !ok {
			return &errors.NotationError{
				Err:      errors.ErrMalformedState,
				Input:    s,
				Offset:   i,
				Char:     s[i],
				Expected: "'0' or a piece letter",
			}
		}
	}
	return nil
}

// PieceAt reads square sq of an encoded state string.
// The caller must have validated s.
func PieceAt(s string, sq chess.Square) (chess.ColouredPiece, bool) {
	if !sq.Valid() || int(sq) >= len(s) {
		return chess.ColouredPiece{}, false
	}
	return chess.PieceFromLetter(s[sq])
}
