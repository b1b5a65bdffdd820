package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// DefaultKeyPrefix namespaces snapshot keys.
const DefaultKeyPrefix = "chesscore:snapshot:"

// RedisStore keeps snapshots as JSON values with an optional TTL.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix sets the key namespace.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if strings.TrimSpace(prefix) != "" {
			s.prefix = prefix
		}
	}
}

// WithTTL sets the expiry of saved snapshots. Zero means no expiry.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = ttl }
}

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) RedisOption {
	return func(s *RedisStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewRedisStore wraps an existing client.
func NewRedisStore(rdb *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		prefix: DefaultKeyPrefix,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DialRedis connects to the server named by a redis:// or rediss:// URL
// and checks it with PING.
func DialRedis(ctx context.Context, rawURL string, opts ...RedisOption) (*RedisStore, error) {
	ropts, err := ParseRedisURL(rawURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(ropts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", ropts.Addr, err)
	}
	return NewRedisStore(rdb, opts...), nil
}

// ParseRedisURL converts redis://[:password@]host[:port][/db] into client options.
func ParseRedisURL(raw string) (*redis.Options, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "redis url: %v", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unsupported scheme: %s", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "redis url %q has no host", raw)
	}
	port := u.Port()
	if port == "" {
		port = "6379"
	}
	db := 0
	if p := strings.TrimPrefix(u.Path, "/"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "redis db %q", p)
		}
		db = n
	}
	pass, _ := u.User.Password()
	return &redis.Options{Addr: host + ":" + port, Password: pass, DB: db}, nil
}

func (s *RedisStore) key(gameID string) string {
	return s.prefix + strings.TrimSpace(gameID)
}

// Save writes snap as JSON, stamping SavedAt.
func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	snap.SavedAt = s.now().UTC()
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(snap.GameID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", snap.GameID, err)
	}
	s.logger.Info("snapshot_saved",
		zap.String("game_id", snap.GameID),
		zap.String("backend", "redis"),
		zap.Duration("ttl", s.ttl),
	)
	return nil
}

// Load reads the snapshot for gameID.
func (s *RedisStore) Load(ctx context.Context, gameID string) (*Snapshot, error) {
	raw, err := s.rdb.Get(ctx, s.key(gameID)).Bytes()
	if err == redis.Nil {
		return nil, notFound(gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", gameID, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedState, "decoding snapshot %s: %v", gameID, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	s.logger.Info("snapshot_loaded", zap.String("game_id", gameID), zap.String("backend", "redis"))
	return &snap, nil
}

// Delete removes the snapshot for gameID.
func (s *RedisStore) Delete(ctx context.Context, gameID string) error {
	return s.rdb.Del(ctx, s.key(gameID)).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
