package store

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/obslog"
)

// Open returns the store selected by cfg. A nil logger means the process logger.
func Open(ctx context.Context, cfg *config.StoreConfig, logger *zap.Logger) (Store, error) {
	if cfg == nil {
		cfg = config.NewStoreConfig()
	}
	if logger == nil {
		logger = obslog.L()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", config.StoreMemory:
		return NewMemoryStore(logger), nil
	case config.StoreRedis:
		return DialRedis(ctx, cfg.RedisURL,
			WithKeyPrefix(cfg.KeyPrefix),
			WithTTL(cfg.TTL),
			WithLogger(logger),
		)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "store backend %q", cfg.Backend)
	}
}
