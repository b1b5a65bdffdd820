package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MemoryStore keeps snapshots in process memory. It is used when no
// external store is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	snaps  map[string]Snapshot
	now    func() time.Time
	logger *zap.Logger
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		snaps:  make(map[string]Snapshot),
		now:    time.Now,
		logger: logger,
	}
}

// Save stores a copy of snap, stamping SavedAt.
func (m *MemoryStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	saved := *snap
	saved.SavedAt = m.now()

	m.mu.Lock()
	m.snaps[saved.GameID] = saved
	m.mu.Unlock()

	snap.SavedAt = saved.SavedAt
	m.logger.Info("snapshot_saved", zap.String("game_id", saved.GameID), zap.String("backend", "memory"))
	return nil
}

// Load returns a copy of the snapshot for gameID.
func (m *MemoryStore) Load(ctx context.Context, gameID string) (*Snapshot, error) {
	m.mu.RLock()
	snap, ok := m.snaps[gameID]
	m.mu.RUnlock()
	if !ok {
		return nil, notFound(gameID)
	}
	m.logger.Info("snapshot_loaded", zap.String("game_id", gameID), zap.String("backend", "memory"))
	return &snap, nil
}

// Delete removes the snapshot for gameID. Unknown IDs are ignored.
func (m *MemoryStore) Delete(ctx context.Context, gameID string) error {
	m.mu.Lock()
	delete(m.snaps, gameID)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored snapshots.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snaps)
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
