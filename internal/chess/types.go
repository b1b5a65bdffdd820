// Package chess provides core chess types and operations.
package chess

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Colour represents the colour of a piece or player.
// The ordinal doubles as the player index: White is player 0.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns 'W' or 'B'.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// ParseColour accepts "w", "white", "b" or "black" in any case.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return White, errors.Wrapf(errors.ErrInvalidColour, "unknown colour %q", s)
}

// Piece represents a chess piece kind.
// NoPiece is only a zero value; emptiness is a property of a Cell.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every real piece kind in ordinal order.
var Kinds = [...]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p > NoPiece && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Valid reports whether p is one of the six real kinds.
func (p Piece) Valid() bool {
	return p >= Pawn && p <= King
}

// Slides reports whether the piece moves along rays.
func (p Piece) Slides() bool {
	return p == Bishop || p == Rook || p == Queen
}

// ColouredPiece is a piece kind together with its colour.
type ColouredPiece struct {
	Kind   Piece
	Colour Colour
}

// W creates a white piece.
func W(kind Piece) ColouredPiece {
	return ColouredPiece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Piece) ColouredPiece {
	return ColouredPiece{Kind: kind, Colour: Black}
}

// Letter returns the notation letter, uppercase for White and lowercase for Black.
func (p ColouredPiece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l != '?' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p ColouredPiece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a notation letter to a coloured piece.
// Uppercase letters are White, lowercase are Black.
func PieceFromLetter(c byte) (ColouredPiece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Piece
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return ColouredPiece{}, false
	}
	return ColouredPiece{Kind: kind, Colour: colour}, true
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstRow = 0
	LastRow  = BoardSize - 1
	FirstCol = 0
	LastCol  = BoardSize - 1
)

// Square is a board index in 0..63, computed as row*8 + col.
// Row 0 is White's back rank.
type Square int

// NoSquare is returned for coordinates off the board.
const NoSquare Square = -1

// NewSquare returns the square at (row, col), or NoSquare when either is out of range.
func NewSquare(row, col int) Square {
	if !InBounds(row, col) {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= FirstRow && row <= LastRow && col >= FirstCol && col <= LastCol
}

// Valid reports whether s is in 0..63.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Row returns the row number (0-7).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column number (0-7).
func (s Square) Col() int {
	return int(s) % BoardSize
}

// String formats the square as file letter and rank digit, row 0 being rank 1.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('1' + s.Row())})
}

// ParseSquare parses "a1".."h8".
func ParseSquare(v string) (Square, bool) {
	if len(v) != 2 || v[0] < 'a' || v[0] > 'h' || v[1] < '1' || v[1] > '8' {
		return NoSquare, false
	}
	return NewSquare(int(v[1]-'1'), int(v[0]-'a')), true
}

// PawnDirection returns +1 for White, -1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRow returns the row a pawn of the given colour starts on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}
