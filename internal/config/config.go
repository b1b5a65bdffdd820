// Package config provides configuration for the chess rules core.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Setup *SetupConfig `yaml:"setup"`
	Rules *RulesConfig `yaml:"rules"`
	Log   *LogConfig   `yaml:"log"`
	Store *StoreConfig `yaml:"store"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Setup: NewSetupConfig(),
		Rules: NewRulesConfig(),
		Log:   NewLogConfig(),
		Store: NewStoreConfig(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	cfg := NewConfig()
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "yaml: %v", err)
		}
	}
	cfg.fillNil()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillNil restores default sections that a document set to null.
func (c *Config) fillNil() {
	if c.Setup == nil {
		c.Setup = NewSetupConfig()
	}
	if c.Rules == nil {
		c.Rules = NewRulesConfig()
	}
	if c.Log == nil {
		c.Log = NewLogConfig()
	}
	if c.Store == nil {
		c.Store = NewStoreConfig()
	}
}

// Validate checks every section and returns the first problem found,
// wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	c.fillNil()
	for _, check := range []func() error{
		c.Setup.validate,
		c.Rules.validate,
		c.Log.validate,
		c.Store.validate,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidConfig, format, args...)
}
