package movegen

import "github.com/lgbarn/chesscore-go/internal/chess"

// knightOffsets are (row, col) deltas in generation order.
var knightOffsets = [...][2]int{
	{-1, 2}, {1, 2}, {1, -2}, {-1, -2},
	{2, -1}, {-2, -1}, {2, 1}, {-2, 1},
}

// knightMoves adds every L-shaped target that is empty or holds an opposing piece.
func (p position) knightMoves(moves []chess.Move, row, col int, colour chess.Colour) []chess.Move {
	for _, off := range knightOffsets {
		toRow, toCol := row+off[0], col+off[1]
		if p.enterable(toRow, toCol, colour) {
			moves = p.addMove(moves, chess.Knight, row, col, toRow, toCol)
		}
	}
	return moves
}
