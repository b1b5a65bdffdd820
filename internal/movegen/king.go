package movegen

import "github.com/lgbarn/chesscore-go/internal/chess"

// kingSteps returns the (row, col) deltas tried for a king on col.
//
// Vertical steps are always tried. Each horizontal side step is bundled
// with the two diagonals that lead the other way: the left step (col > 0)
// carries the col+1 diagonals and the right step (col < 7) carries the
// col-1 diagonals. A king on column 0 therefore never gets the two col+1
// diagonals, and a king on column 7 never gets the two col-1 diagonals.
func kingSteps(col int) [][2]int {
	steps := [][2]int{{1, 0}, {-1, 0}}
	if col > chess.FirstCol {
		steps = append(steps, [2]int{0, -1}, [2]int{1, 1}, [2]int{-1, 1})
	}
	if col < chess.LastCol {
		steps = append(steps, [2]int{0, 1}, [2]int{1, -1}, [2]int{-1, -1})
	}
	return steps
}

// kingMoves adds neighbour squares that are empty or hold an opposing piece.
// No castling.
func (p position) kingMoves(moves []chess.Move, row, col int, colour chess.Colour) []chess.Move {
	for _, step := range kingSteps(col) {
		toRow, toCol := row+step[0], col+step[1]
		if p.enterable(toRow, toCol, colour) {
			moves = p.addMove(moves, chess.King, row, col, toRow, toCol)
		}
	}
	return moves
}
