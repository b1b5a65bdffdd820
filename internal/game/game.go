// Package game is the object a host board-game framework drives: it owns
// the board and the players, sets up and tears down the position, and
// answers the pick-up and drop questions through the rules package.
package game

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/movegen"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/obslog"
	"github.com/lgbarn/chesscore-go/internal/rules"
	"github.com/lgbarn/chesscore-go/internal/store"
)

// Game is a single chess game. It is not safe for concurrent use; the host
// drives it from one goroutine.
type Game struct {
	id      uuid.UUID
	board   *chess.Board
	players [NumPlayers]*Player
	current int
	started bool

	placement string
	strict    bool
	sliders   bool
	first     chess.Colour

	gen    *movegen.Generator
	filter *rules.Filter
	store  store.Store
	logger *zap.Logger
}

// New creates a game with an empty board. Call SetUpBoard to start it.
// Without WithLogger the game logs to the process logger.
func New(opts ...Option) *Game {
	g := &Game{
		id:        uuid.New(),
		board:     chess.NewBoard(),
		players:   newPlayers(),
		placement: notation.StartPlacement,
		first:     chess.White,
		logger:    obslog.L(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game_id", g.id.String()))
	g.gen = movegen.New(
		movegen.WithSlidingPieces(g.sliders),
		movegen.WithLogger(g.logger),
	)
	g.filter = rules.NewFilter(g.gen, g.logger)
	return g
}

// ID returns the game ID.
func (g *Game) ID() uuid.UUID { return g.id }

// Started reports whether the board has been set up or restored.
func (g *Game) Started() bool { return g.started }

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board { return g.board.Copy() }

// SetUpBoard clears the board, fills it from the configured placement and
// makes the first player active.
//
// In the default mode parsing stops at the first character it cannot apply
// and the pieces placed so far stay on the board. With strict placement any
// such character is an error and the board is left untouched.
func (g *Game) SetUpBoard() error {
	var board *chess.Board
	if g.strict {
		b, err := notation.ParsePlacementStrict(g.placement)
		if err != nil {
			g.logger.Warn("placement_rejected", zap.String("placement", g.placement), zap.Error(err))
			return err
		}
		board = b
	} else {
		b, consumed := notation.ParsePlacement(g.placement)
		if consumed < len(g.placement) && g.placement[consumed] != notation.FieldSeparator {
			g.logger.Warn("placement_truncated",
				zap.String("placement", g.placement),
				zap.Int("offset", consumed),
				zap.String("char", string(g.placement[consumed])),
			)
		}
		board = b
	}

	g.board = board
	g.current = int(g.first)
	g.started = true
	g.logger.Info("game_setup",
		zap.Int("pieces", board.Count()),
		zap.Stringer("to_move", g.first),
		zap.Bool("sliding_pieces", g.sliders),
	)
	return nil
}

// StopGame removes every piece. The game must be set up again before use.
func (g *Game) StopGame() {
	g.board.Clear()
	g.started = false
	g.logger.Info("game_stopped")
}

// CheckForWinner always returns nil: checkmate is not detected.
func (g *Game) CheckForWinner() *Player { return nil }

// CheckForDraw always returns false: draws are not detected.
func (g *Game) CheckForDraw() bool { return false }

// PlayerAt returns player n, or nil when n is not 0 or 1.
func (g *Game) PlayerAt(n int) *Player {
	if n < 0 || n >= NumPlayers {
		return nil
	}
	return g.players[n]
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player { return g.players[g.current] }

// ActiveColour returns the colour of the current player.
func (g *Game) ActiveColour() chess.Colour { return g.CurrentPlayer().Colour }

// SetCurrentPlayer makes player n active.
func (g *Game) SetCurrentPlayer(n int) error {
	if g.PlayerAt(n) == nil {
		return errors.Wrapf(errors.ErrInvalidColour, "player %d", n)
	}
	g.current = n
	return nil
}

// EndTurn passes the turn to the other player.
func (g *Game) EndTurn() {
	g.current = (g.current + 1) % NumPlayers
}

// PieceAt returns the piece on sq, if any.
func (g *Game) PieceAt(sq Square) (chess.ColouredPiece, bool) {
	return g.board.At(index(sq))
}

// OwnerAt returns the player owning the piece at (col, row), or nil for an
// empty or off-board square.
func (g *Game) OwnerAt(col, row int) *Player {
	piece, ok := g.board.Get(row, col)
	if !ok {
		return nil
	}
	return g.players[piece.Colour]
}

// InitialStateString is the state string of the position as set up.
func (g *Game) InitialStateString() string { return g.StateString() }

// StateString encodes the current board, one character per square.
func (g *Game) StateString() string {
	return notation.EncodeState(g.board)
}

// FEN returns the board as standard FEN with the active colour.
func (g *Game) FEN() string {
	return notation.FormatFEN(g.board, g.ActiveColour())
}

// SetStateString replaces the board with the occupancy in s. Every occupied
// square becomes a pawn of the encoded colour. On error the board is
// unchanged.
func (g *Game) SetStateString(s string) error {
	board, err := notation.DecodeState(s)
	if err != nil {
		return err
	}
	g.board = board
	g.started = true
	g.logger.Info("state_restored", zap.Int("pieces", board.Count()))
	return nil
}

// MayPickUp reports whether piece belongs to the current player.
func (g *Game) MayPickUp(piece chess.ColouredPiece) bool {
	return rules.MayPickUp(piece, g.ActiveColour())
}

// MayPickUpTag is MayPickUp for a host tag.
func (g *Game) MayPickUpTag(tag notation.Tag) bool {
	return rules.MayPickUpTag(tag, g.ActiveColour())
}

// IsLegal reports whether piece may be dropped on to after being lifted
// from from. Nil or off-board squares are never legal.
func (g *Game) IsLegal(piece chess.ColouredPiece, from, to Square) bool {
	return g.filter.IsLegal(g.board, piece, index(from), index(to))
}

// CanMoveFromTo is IsLegal for a host tag.
func (g *Game) CanMoveFromTo(tag notation.Tag, from, to Square) bool {
	return g.filter.IsLegalTag(g.board, tag, index(from), index(to))
}

// LegalMoves returns the generated moves starting on from, for the colour
// of the piece standing there. An empty square has none.
func (g *Game) LegalMoves(from Square) []chess.Move {
	sq := index(from)
	piece, ok := g.board.At(sq)
	if !ok {
		return nil
	}
	moves, err := g.gen.Generate(g.StateString(), piece.Colour)
	if err != nil {
		return nil
	}
	return movegen.From(moves, sq)
}

// Snapshot saves the current state string and active colour under the game ID.
func (g *Game) Snapshot(ctx context.Context) (*store.Snapshot, error) {
	if g.store == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "no snapshot store")
	}
	if !g.started {
		return nil, errors.ErrGameNotStarted
	}
	snap := &store.Snapshot{
		GameID: g.id.String(),
		State:  g.StateString(),
		ToMove: g.ActiveColour(),
	}
	if err := g.store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore loads the snapshot saved under the game ID and applies it with
// SetStateString, so kinds are not restored. The saved colour becomes active.
func (g *Game) Restore(ctx context.Context) error {
	if g.store == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no snapshot store")
	}
	snap, err := g.store.Load(ctx, g.id.String())
	if err != nil {
		return err
	}
	if err := g.SetStateString(snap.State); err != nil {
		return err
	}
	g.current = int(snap.ToMove)
	return nil
}
