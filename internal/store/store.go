// Package store saves and loads board snapshots keyed by game ID.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// Snapshot is a saved position: the state string and the side to move.
type Snapshot struct {
	GameID  string       `json:"game_id"`
	State   string       `json:"state"`
	ToMove  chess.Colour `json:"to_move"`
	SavedAt time.Time    `json:"saved_at"`
}

// Validate checks that the snapshot can be stored and restored.
func (s *Snapshot) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrMalformedState, "nil snapshot")
	}
	if strings.TrimSpace(s.GameID) == "" {
		return errors.Wrap(errors.ErrMalformedState, "snapshot has no game id")
	}
	if s.ToMove != chess.White && s.ToMove != chess.Black {
		return errors.Wrapf(errors.ErrInvalidColour, "snapshot colour %d", int(s.ToMove))
	}
	return notation.ValidateState(s.State)
}

// Store persists snapshots. Load returns ErrSnapshotNotFound for unknown IDs.
type Store interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context, gameID string) (*Snapshot, error)
	Delete(ctx context.Context, gameID string) error
	Close() error
}

func notFound(gameID string) error {
	return errors.Wrapf(errors.ErrSnapshotNotFound, "game %s", gameID)
}
