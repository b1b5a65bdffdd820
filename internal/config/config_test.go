package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	cerrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/notation"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Setup.Placement != DefaultPlacement {
		t.Errorf("Placement = %q, want %q", cfg.Setup.Placement, DefaultPlacement)
	}
	if cfg.Setup.Strict {
		t.Error("Strict should be false by default")
	}
	if cfg.Setup.FirstColour() != chess.White {
		t.Errorf("FirstColour() = %v, want White", cfg.Setup.FirstColour())
	}
	if cfg.Rules.SlidingPieces {
		t.Error("SlidingPieces should be false by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Store.Backend != StoreMemory {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, StoreMemory)
	}
	if cfg.Store.TTL != 24*time.Hour {
		t.Errorf("Store.TTL = %v, want 24h", cfg.Store.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestParse(t *testing.T) {
	raw := []byte(`
setup:
  placement: "8/8/8/8/8/8/8/8"
  strict: true
  first_player: black
rules:
  sliding_pieces: true
log:
  level: debug
  format: json
store:
  backend: redis
  redis_url: redis://localhost:6379/2
  ttl: 90m
`)
	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Setup.Placement != "8/8/8/8/8/8/8/8" {
		t.Errorf("Placement = %q", cfg.Setup.Placement)
	}
	if !cfg.Setup.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Setup.FirstColour() != chess.Black {
		t.Errorf("FirstColour() = %v, want Black", cfg.Setup.FirstColour())
	}
	if !cfg.Rules.SlidingPieces {
		t.Error("SlidingPieces = false, want true")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != LogFormatJSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Store.TTL != 90*time.Minute {
		t.Errorf("TTL = %v, want 90m", cfg.Store.TTL)
	}
	// Unset keys keep defaults.
	if cfg.Store.KeyPrefix != NewStoreConfig().KeyPrefix {
		t.Errorf("KeyPrefix = %q, want default", cfg.Store.KeyPrefix)
	}
	if !cfg.Log.Console {
		t.Error("Console should keep its default")
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if cfg.Setup.Placement != DefaultPlacement {
		t.Errorf("Placement = %q, want default", cfg.Setup.Placement)
	}
}

func TestParse_NullSection(t *testing.T) {
	cfg, err := Parse([]byte("rules: null\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Rules == nil {
		t.Fatal("Rules is nil")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "setup: [unclosed"},
		{"empty placement", "setup:\n  placement: \"\"\n"},
		{"bad first player", "setup:\n  first_player: green\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"unknown backend", "store:\n  backend: etcd\n"},
		{"redis without url", "store:\n  backend: redis\n"},
		{"negative ttl", "store:\n  ttl: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chesscore.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  sliding_pieces: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Rules.SlidingPieces {
		t.Error("SlidingPieces = false, want true")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := NewConfigBuilder().
		WithSlidingPieces(true).
		WithRedisStore("redis://localhost:6379").
		WithSnapshotTTL(time.Hour).
		Build()

	raw, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !got.Rules.SlidingPieces || got.Store.Backend != StoreRedis || got.Store.TTL != time.Hour {
		t.Errorf("round trip lost settings: %+v %+v", got.Rules, got.Store)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CHESSCORE_PLACEMENT":      "4K3",
		"CHESSCORE_STRICT":         "true",
		"CHESSCORE_FIRST_PLAYER":   "b",
		"CHESSCORE_SLIDING_PIECES": "1",
		"CHESSCORE_LOG_LEVEL":      "warn",
		"CHESSCORE_LOG_FORMAT":     "JSON",
		"CHESSCORE_LOG_CALLER":     "yes", // not a bool, ignored
		"CHESSCORE_STORE":          "Redis",
		"CHESSCORE_REDIS_URL":      "redis://cache:6379/1",
		"CHESSCORE_SNAPSHOT_TTL":   "120",
	}
	cfg := NewConfig()
	cfg.applyEnv(func(k string) string { return env[k] })

	if cfg.Setup.Placement != "4K3" {
		t.Errorf("Placement = %q", cfg.Setup.Placement)
	}
	if !cfg.Setup.Strict {
		t.Error("Strict = false")
	}
	if cfg.Setup.FirstColour() != chess.Black {
		t.Errorf("FirstColour() = %v", cfg.Setup.FirstColour())
	}
	if !cfg.Rules.SlidingPieces {
		t.Error("SlidingPieces = false")
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != LogFormatJSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Log.Caller {
		t.Error("Caller changed by an unparseable value")
	}
	if cfg.Store.Backend != StoreRedis || cfg.Store.RedisURL != "redis://cache:6379/1" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Store.TTL != 2*time.Minute {
		t.Errorf("TTL = %v, want 2m", cfg.Store.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyEnv_DurationString(t *testing.T) {
	cfg := NewConfig()
	cfg.applyEnv(func(k string) string {
		if k == "CHESSCORE_SNAPSHOT_TTL" {
			return "36h"
		}
		return ""
	})
	if cfg.Store.TTL != 36*time.Hour {
		t.Errorf("TTL = %v, want 36h", cfg.Store.TTL)
	}
}

func TestApplyEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("CHESSCORE_LOG_LEVEL", "error")
	cfg := NewConfig()
	cfg.ApplyEnv()
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithPlacement("8/8/8/8/8/8/8/8").
		WithStrictPlacement(true).
		WithFirstPlayer("black").
		WithSlidingPieces(true).
		WithLogLevel("debug").
		WithLogFormat(LogFormatLegacy).
		WithMemoryStore().
		WithSnapshotTTL(0).
		Build()

	if cfg.Setup.Placement != "8/8/8/8/8/8/8/8" || !cfg.Setup.Strict {
		t.Errorf("Setup = %+v", cfg.Setup)
	}
	if cfg.Setup.FirstColour() != chess.Black {
		t.Errorf("FirstColour() = %v", cfg.Setup.FirstColour())
	}
	if !cfg.Rules.SlidingPieces {
		t.Error("SlidingPieces = false")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != LogFormatLegacy {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Store.Backend != StoreMemory || cfg.Store.TTL != 0 {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDefaultPlacementIsStartPlacement(t *testing.T) {
	if DefaultPlacement != notation.StartPlacement {
		t.Errorf("DefaultPlacement = %q, want %q", DefaultPlacement, notation.StartPlacement)
	}
	if NewSetupConfig().Placement != notation.StartPlacement {
		t.Errorf("NewSetupConfig().Placement = %q", NewSetupConfig().Placement)
	}
}

func TestParse_BadFirstPlayerIsInvalidColour(t *testing.T) {
	_, err := Parse([]byte("setup:\n  first_player: green\n"))
	if !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, cerrors.ErrInvalidColour) {
		t.Errorf("Parse() error = %v, want it to wrap ErrInvalidColour", err)
	}
}

func TestNewConfigBuilderFrom(t *testing.T) {
	base := &Config{Rules: &RulesConfig{SlidingPieces: true}}
	cfg := NewConfigBuilderFrom(base).WithLogLevel("debug").Build()

	if cfg != base {
		t.Error("builder should modify the given Config in place")
	}
	if !cfg.Rules.SlidingPieces {
		t.Error("existing Rules section was replaced")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Setup == nil || cfg.Store == nil {
		t.Fatal("nil sections were not filled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	if NewConfigBuilderFrom(nil).Build().Setup.Placement != DefaultPlacement {
		t.Error("nil Config should start from defaults")
	}
}
