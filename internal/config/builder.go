package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom continues building on an existing Config.
// Nil sections are filled with defaults.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	if cfg == nil {
		return NewConfigBuilder()
	}
	cfg.fillNil()
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlacement sets the setup placement string.
func (b *ConfigBuilder) WithPlacement(placement string) *ConfigBuilder {
	b.cfg.Setup.Placement = placement
	return b
}

// WithStrictPlacement makes malformed placement text an error.
func (b *ConfigBuilder) WithStrictPlacement(enabled bool) *ConfigBuilder {
	b.cfg.Setup.Strict = enabled
	return b
}

// WithFirstPlayer sets the colour that moves first.
func (b *ConfigBuilder) WithFirstPlayer(colour string) *ConfigBuilder {
	b.cfg.Setup.FirstPlayer = colour
	return b
}

// WithSlidingPieces enables bishop, rook and queen generation.
func (b *ConfigBuilder) WithSlidingPieces(enabled bool) *ConfigBuilder {
	b.cfg.Rules.SlidingPieces = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithMemoryStore keeps snapshots in process memory.
func (b *ConfigBuilder) WithMemoryStore() *ConfigBuilder {
	b.cfg.Store.Backend = StoreMemory
	return b
}

// WithRedisStore keeps snapshots in Redis.
func (b *ConfigBuilder) WithRedisStore(url string) *ConfigBuilder {
	b.cfg.Store.Backend = StoreRedis
	b.cfg.Store.RedisURL = url
	return b
}

// WithSnapshotTTL sets how long snapshots live. Zero keeps them forever.
func (b *ConfigBuilder) WithSnapshotTTL(ttl time.Duration) *ConfigBuilder {
	b.cfg.Store.TTL = ttl
	return b
}
