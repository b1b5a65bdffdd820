// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	// Position sources
	placementFlag = flag.String("placement", "", "Placement string, row 0 (White's back rank) first")
	fenFlag       = flag.String("fen", "", "Standard FEN string (rank 8 first)")
	stateFlag     = flag.String("state", "", "64-character state string")
	colourFlag    = flag.String("colour", "", "Side to move: white or black (default: from the source)")
	batchFile     = flag.String("batch", "", "File of positions, one state string or FEN per line")
	uniqueFlag    = flag.Bool("unique", false, "Skip repeated positions in -batch")

	// Rules
	slidersFlag = flag.Bool("sliders", false, "Generate bishop, rook and queen moves")
	strictFlag  = flag.Bool("strict", false, "Reject malformed placement text")

	// Legality query
	fromFlag = flag.String("from", "", "Source square for a legality check (e.g. e2)")
	toFlag   = flag.String("to", "", "Destination square for a legality check (e.g. e4)")

	// Snapshots
	saveFlag = flag.Bool("save", false, "Save the position to the configured store and print its ID")
	loadFlag = flag.String("load", "", "Load the position saved under this game ID")

	// Output
	jsonOutput  = flag.Bool("json", false, "Output in JSON format")
	streamJSON  = flag.Bool("stream", false, "With -json, write each report as it is produced instead of one array")
	diagramFlag = flag.Bool("diagram", false, "Draw the board in text output")
	workers     = flag.Int("workers", 0, "Worker goroutines for -batch (0 = number of CPUs)")

	// Configuration and logging
	configFile = flag.String("config", "", "YAML configuration file")
	logLevel   = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	redisURL   = flag.String("redis", "", "Redis URL; selects the redis snapshot store")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overlays command-line flags on the configuration held by b.
// Flags left at their zero value keep the file and environment settings.
func applyFlags(b *config.ConfigBuilder) {
	applySetupFlags(b)
	applyRulesFlags(b)
	applyLogFlags(b)
	applyStoreFlags(b)
}

// applySetupFlags configures the initial board.
func applySetupFlags(b *config.ConfigBuilder) {
	if *placementFlag != "" {
		b.WithPlacement(*placementFlag)
	}
	if *strictFlag {
		b.WithStrictPlacement(true)
	}
	if *colourFlag != "" {
		b.WithFirstPlayer(*colourFlag)
	}
}

// applyRulesFlags configures move generation.
func applyRulesFlags(b *config.ConfigBuilder) {
	if *slidersFlag {
		b.WithSlidingPieces(true)
	}
}

// applyLogFlags configures logging.
func applyLogFlags(b *config.ConfigBuilder) {
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
}

// applyStoreFlags configures the snapshot store.
func applyStoreFlags(b *config.ConfigBuilder) {
	if *redisURL != "" {
		b.WithRedisStore(*redisURL)
	}
}
