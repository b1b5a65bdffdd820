package movegen

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// occupancy classifies a square as empty or by the colour on it.
type occupancy int

const (
	empty occupancy = iota
	whiteSide
	blackSide
)

func sideOf(colour chess.Colour) occupancy {
	if colour == chess.White {
		return whiteSide
	}
	return blackSide
}

// position is a validated state string.
type position string

func (p position) piece(sq chess.Square) (chess.ColouredPiece, bool) {
	return notation.PieceAt(string(p), sq)
}

// classify returns the occupancy of (row, col). Off-board squares are empty.
func (p position) classify(row, col int) occupancy {
	piece, ok := p.piece(chess.NewSquare(row, col))
	if !ok {
		return empty
	}
	return sideOf(piece.Colour)
}

// enterable reports whether a piece of colour may land on (row, col):
// the square is on the board and is empty or holds an opposing piece.
func (p position) enterable(row, col int, colour chess.Colour) bool {
	if !chess.InBounds(row, col) {
		return false
	}
	return p.classify(row, col) != sideOf(colour)
}

// addMove is the final admission gate for every candidate. The move is
// kept only when the destination is on the board and its occupancy differs
// from the source's, which rejects landing on a friendly piece.
func (p position) addMove(moves []chess.Move, kind chess.Piece, fromRow, fromCol, toRow, toCol int) []chess.Move {
	if !chess.InBounds(toRow, toCol) {
		return moves
	}
	if p.classify(fromRow, fromCol) == p.classify(toRow, toCol) {
		return moves
	}
	return append(moves, chess.Move{
		From:  chess.NewSquare(fromRow, fromCol),
		To:    chess.NewSquare(toRow, toCol),
		Piece: kind,
	})
}
