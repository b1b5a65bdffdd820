package movegen

import "github.com/lgbarn/chesscore-go/internal/chess"

// pawnMoves adds single and double pushes and diagonal captures.
// Pawns standing on row 0 or row 7 generate nothing. There is no en
// passant and no promotion.
func (p position) pawnMoves(moves []chess.Move, row, col int, colour chess.Colour) []chess.Move {
	if row == chess.FirstRow || row == chess.LastRow {
		return moves
	}

	dir := chess.PawnDirection(colour)
	next := row + dir

	// Forward moves
	if p.classify(next, col) == empty {
		moves = p.addMove(moves, chess.Pawn, row, col, next, col)

		double := row + 2*dir
		if row == chess.PawnStartRow(colour) && p.classify(double, col) == empty {
			moves = p.addMove(moves, chess.Pawn, row, col, double, col)
		}
	}

	// Captures
	opponent := sideOf(colour.Opposite())
	for _, dc := range [...]int{-1, 1} {
		toCol := col + dc
		if !chess.InBounds(next, toCol) {
			continue
		}
		if p.classify(next, toCol) == opponent {
			moves = p.addMove(moves, chess.Pawn, row, col, next, toCol)
		}
	}
	return moves
}
