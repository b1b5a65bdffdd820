// Package obslog builds the process logger from configuration.
package obslog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	mu           sync.RWMutex
	globalLogger = zap.NewNop()
)

// L returns the process logger. It is a no-op logger until Init succeeds.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// ReplaceGlobal installs logger as the process logger and returns a
// function that restores the previous one. A nil logger installs a no-op.
func ReplaceGlobal(logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	prev := globalLogger
	globalLogger = logger
	mu.Unlock()
	return func() { ReplaceGlobal(prev) }
}

// Init builds a logger from cfg and installs it as the process logger.
func Init(cfg *config.LogConfig) (*zap.Logger, error) {
	logger, err := New(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	ReplaceGlobal(logger)
	return logger, nil
}

// New builds a logger writing to console (when enabled) and to cfg.File
// (when set). With neither output it falls back to a development console
// encoder on console.
func New(cfg *config.LogConfig, console io.Writer) (*zap.Logger, error) {
	if cfg == nil {
		cfg = config.NewLogConfig()
	}
	level := parseLevel(cfg.Level)
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != config.LogFormatLegacy && format != config.LogFormatJSON && format != config.LogFormatConsole {
		format = config.LogFormatConsole
	}

	var cores []zapcore.Core

	if cfg.Console && console != nil {
		cores = append(cores, zapcore.NewCore(encoderFor(format), zapcore.AddSync(console), level))
	}

	if path := strings.TrimSpace(cfg.File); path != "" {
		if err := ensureDir(filepath.Dir(path)); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoderFor(format), zapcore.AddSync(f), level))
	}

	if len(cores) == 0 {
		out := console
		if out == nil {
			out = os.Stderr
		}
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(out), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	if cfg.Caller || format == config.LogFormatLegacy {
		logger = logger.WithOptions(zap.AddCaller())
	}
	logger = logger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, nil
}

func encoderFor(format string) zapcore.Encoder {
	switch format {
	case config.LogFormatJSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig())
	case config.LogFormatLegacy:
		return zapcore.NewConsoleEncoder(legacyEncoderConfig())
	default:
		return zapcore.NewConsoleEncoder(consoleEncoderConfig())
	}
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func legacyEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return cfg
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
