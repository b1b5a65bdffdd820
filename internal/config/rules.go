package config

// RulesConfig holds move generation settings.
type RulesConfig struct {
	// SlidingPieces enables bishop, rook and queen generation.
	// Off by default: those pieces have no moves.
	SlidingPieces bool `yaml:"sliding_pieces"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

func (c *RulesConfig) validate() error {
	return nil
}
