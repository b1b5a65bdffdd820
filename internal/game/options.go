package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/store"
)

// Option configures a Game.
type Option func(*Game)

// WithID sets the game ID used as the snapshot key.
func WithID(id uuid.UUID) Option {
	return func(g *Game) { g.id = id }
}

// WithLogger sets the logger for the game and its move generator.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPlacement sets the placement string SetUpBoard reads.
func WithPlacement(placement string) Option {
	return func(g *Game) { g.placement = placement }
}

// WithStrictPlacement makes SetUpBoard fail on malformed placement text.
func WithStrictPlacement(strict bool) Option {
	return func(g *Game) { g.strict = strict }
}

// WithSlidingPieces enables bishop, rook and queen moves.
func WithSlidingPieces(enabled bool) Option {
	return func(g *Game) { g.sliders = enabled }
}

// WithFirstPlayer sets the colour that is active after SetUpBoard.
func WithFirstPlayer(colour chess.Colour) Option {
	return func(g *Game) { g.first = colour }
}

// WithStore sets where Snapshot and Restore keep state.
func WithStore(s store.Store) Option {
	return func(g *Game) { g.store = s }
}

// FromConfig returns the options described by cfg.
func FromConfig(cfg *config.Config) []Option {
	if cfg == nil {
		return nil
	}
	var opts []Option
	if cfg.Setup != nil {
		opts = append(opts,
			WithPlacement(cfg.Setup.Placement),
			WithStrictPlacement(cfg.Setup.Strict),
			WithFirstPlayer(cfg.Setup.FirstColour()),
		)
	}
	if cfg.Rules != nil {
		opts = append(opts, WithSlidingPieces(cfg.Rules.SlidingPieces))
	}
	return opts
}
