package chess

// Cell is one board square's content. At most one piece occupies it.
type Cell struct {
	Occupied bool
	Piece    ColouredPiece
}

// Board is the canonical in-memory position: 64 cells in row-major order.
type Board struct {
	cells [NumSquares]Cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the piece on s and whether the square is occupied.
// Off-board squares report as empty.
func (b *Board) At(s Square) (ColouredPiece, bool) {
	if !s.Valid() {
		return ColouredPiece{}, false
	}
	c := b.cells[s]
	return c.Piece, c.Occupied
}

// Get returns the piece at (row, col) and whether the square is occupied.
func (b *Board) Get(row, col int) (ColouredPiece, bool) {
	return b.At(NewSquare(row, col))
}

// Place puts piece on s, replacing any occupant. Returns false for off-board squares.
func (b *Board) Place(s Square, piece ColouredPiece) bool {
	if !s.Valid() {
		return false
	}
	b.cells[s] = Cell{Occupied: true, Piece: piece}
	return true
}

// Remove empties s and returns what was there.
func (b *Board) Remove(s Square) (ColouredPiece, bool) {
	if !s.Valid() {
		return ColouredPiece{}, false
	}
	c := b.cells[s]
	b.cells[s] = Cell{}
	return c.Piece, c.Occupied
}

// Clear empties every square.
func (b *Board) Clear() {
	b.cells = [NumSquares]Cell{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// ForEach calls fn for every square in row-major order.
func (b *Board) ForEach(fn func(s Square, c Cell)) {
	for i, c := range b.cells {
		fn(Square(i), c)
	}
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}
