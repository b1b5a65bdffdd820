package game

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// NumPlayers is fixed at two.
const NumPlayers = 2

// Player is a seat at the board. Player 0 plays White.
type Player struct {
	Number int
	Colour chess.Colour
}

func newPlayers() [NumPlayers]*Player {
	return [NumPlayers]*Player{
		{Number: 0, Colour: chess.White},
		{Number: 1, Colour: chess.Black},
	}
}

// String returns e.g. "player 0 (White)".
func (p *Player) String() string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("player %d (%s)", p.Number, p.Colour)
}
