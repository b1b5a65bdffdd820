package chess

// Move is a pseudo-legal move: source, destination and the kind of the moving piece.
// It carries no capture or promotion metadata; a capture is implied by occupancy.
type Move struct {
	From  Square
	To    Square
	Piece Piece
}

// String returns coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Matches reports whether the move goes from one square to the other.
func (m Move) Matches(from, to Square) bool {
	return m.From == from && m.To == to
}
