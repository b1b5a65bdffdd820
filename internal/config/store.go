package config

import (
	"strings"
	"time"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// StoreConfig selects where snapshots are kept.
type StoreConfig struct {
	Backend string `yaml:"backend"`

	// RedisURL is a redis:// or rediss:// URL.
	RedisURL string `yaml:"redis_url"`

	KeyPrefix string        `yaml:"key_prefix"`
	TTL       time.Duration `yaml:"ttl"`
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Backend:   StoreMemory,
		KeyPrefix: "chesscore:snapshot:",
		TTL:       24 * time.Hour,
	}
}

func (c *StoreConfig) validate() error {
	if c.TTL < 0 {
		return invalid("store.ttl %v is negative", c.TTL)
	}
	switch strings.ToLower(strings.TrimSpace(c.Backend)) {
	case "", StoreMemory:
		return nil
	case StoreRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return invalid("store.redis_url is required for the redis backend")
		}
		return nil
	default:
		return invalid("store.backend %q", c.Backend)
	}
}
