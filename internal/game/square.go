package game

import "github.com/lgbarn/chesscore-go/internal/chess"

// Square is anything the host can hand over as a board location.
type Square interface {
	Row() int
	Column() int
}

// GridSquare is the Square used by this package and its tests.
type GridSquare struct {
	row, col int
}

// At returns the square at (col, row), the argument order the host uses.
func At(col, row int) GridSquare {
	return GridSquare{row: row, col: col}
}

// FromIndex returns the square for a board index.
func FromIndex(s chess.Square) GridSquare {
	return GridSquare{row: s.Row(), col: s.Col()}
}

// Row returns the row, 0 being White's back rank.
func (s GridSquare) Row() int { return s.row }

// Column returns the column, 0 being the a-file.
func (s GridSquare) Column() int { return s.col }

// String returns the coordinate, e.g. "e2", or "-" off the board.
func (s GridSquare) String() string { return index(s).String() }

// index converts a Square to a board index, NoSquare when off the board.
func index(s Square) chess.Square {
	if s == nil {
		return chess.NoSquare
	}
	return chess.NewSquare(s.Row(), s.Column())
}
