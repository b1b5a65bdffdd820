package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// DefaultPlacement is the starting layout, White's back rank first.
const DefaultPlacement = notation.StartPlacement

// SetupConfig holds settings for building the initial board.
type SetupConfig struct {
	// Placement is read row 0 first.
	Placement string `yaml:"placement"`

	// Strict reports malformed placement text as an error instead of
	// stopping silently at the first unrecognised character.
	Strict bool `yaml:"strict"`

	// FirstPlayer is the colour that moves first ("white" or "black").
	FirstPlayer string `yaml:"first_player"`
}

// NewSetupConfig creates a SetupConfig with default values.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{
		Placement:   DefaultPlacement,
		FirstPlayer: "white",
	}
}

// FirstColour returns the parsed FirstPlayer, White when unset.
func (c *SetupConfig) FirstColour() chess.Colour {
	colour, err := chess.ParseColour(c.FirstPlayer)
	if err != nil {
		return chess.White
	}
	return colour
}

func (c *SetupConfig) validate() error {
	if strings.TrimSpace(c.Placement) == "" {
		return invalid("setup.placement is empty")
	}
	if strings.TrimSpace(c.FirstPlayer) == "" {
		return nil
	}
	if _, err := chess.ParseColour(c.FirstPlayer); err != nil {
		return fmt.Errorf("%w: setup.first_player: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}
