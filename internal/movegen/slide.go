package movegen

import "github.com/lgbarn/chesscore-go/internal/chess"

var (
	diagonals   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonals = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	// Queen rays: diagonals first.
	allRays = append(append([][2]int{}, diagonals...), orthogonals...)
)

// rays returns the ray directions for a sliding kind.
func rays(kind chess.Piece) [][2]int {
	switch kind {
	case chess.Bishop:
		return diagonals
	case chess.Rook:
		return orthogonals
	case chess.Queen:
		return allRays
	}
	return nil
}

// slidingMoves casts a ray along each direction, one step at a time. Empty
// squares are added and the ray continues; an opposing piece is added as a
// capture and stops the ray; a friendly piece stops it without a move.
func (p position) slidingMoves(moves []chess.Move, kind chess.Piece, row, col int, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		toRow, toCol := row+dir[0], col+dir[1]
		for chess.InBounds(toRow, toCol) {
			if p.classify(toRow, toCol) != empty {
				moves = p.addMove(moves, kind, row, col, toRow, toCol)
				break // Blocked
			}
			moves = p.addMove(moves, kind, row, col, toRow, toCol)
			toRow += dir[0]
			toCol += dir[1]
		}
	}
	return moves
}
