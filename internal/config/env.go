package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHESSCORE_"

// ApplyEnv overrides fields from CHESSCORE_* environment variables.
// Unparseable values are ignored and the current value is kept.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	c.fillNil()
	get := func(key string) string {
		return strings.TrimSpace(getenv(EnvPrefix + key))
	}

	if v := get("PLACEMENT"); v != "" {
		c.Setup.Placement = v
	}
	if v := get("STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Setup.Strict = b
		}
	}
	if v := get("FIRST_PLAYER"); v != "" {
		c.Setup.FirstPlayer = v
	}

	if v := get("SLIDING_PIECES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Rules.SlidingPieces = b
		}
	}

	if v := get("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := get("LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := get("LOG_CALLER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Caller = b
		}
	}
	if v := get("LOG_TO_CONSOLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Console = b
		}
	}
	if v := get("LOG_FILE"); v != "" {
		c.Log.File = v
	}

	if v := get("STORE"); v != "" {
		c.Store.Backend = strings.ToLower(v)
	}
	if v := get("REDIS_URL"); v != "" {
		c.Store.RedisURL = v
	}
	if v := get("KEY_PREFIX"); v != "" {
		c.Store.KeyPrefix = v
	}
	if v := get("SNAPSHOT_TTL"); v != "" {
		// seconds or a duration string
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Store.TTL = time.Duration(n) * time.Second
		} else if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.Store.TTL = d
		}
	}
}
