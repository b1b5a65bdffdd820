// chesscore inspects chess positions: it prints their encodings and the
// moves the rules core generates, answers legality queries, evaluates batch
// files in parallel and saves or loads snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/movegen"
	"github.com/lgbarn/chesscore-go/internal/obslog"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/rules"
	"github.com/lgbarn/chesscore-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := obslog.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best effort on exit

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the configuration from defaults, the optional file,
// the environment and finally the flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	b := config.NewConfigBuilderFrom(cfg)
	applyFlags(b)
	cfg = b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app holds what a run needs after configuration.
type app struct {
	cfg    *config.Config
	gen    *movegen.Generator
	filter *rules.Filter
	logger *zap.Logger
	store  store.Store
}

func newApp(cfg *config.Config, logger *zap.Logger) *app {
	gen := movegen.New(
		movegen.WithSlidingPieces(cfg.Rules.SlidingPieces),
		movegen.WithLogger(logger),
	)
	return &app{
		cfg:    cfg,
		gen:    gen,
		filter: rules.NewFilter(gen, logger),
		logger: logger,
	}
}

// openStore opens the configured store once.
func (a *app) openStore(ctx context.Context) (store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := store.Open(ctx, a.cfg.Store, a.logger)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// run executes the single-position or batch mode and writes reports to out.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	a := newApp(cfg, logger)
	defer a.close()

	var w output.ReportWriter
	switch {
	case *jsonOutput && *streamJSON:
		w = output.NewJSONWriterSingle(out)
	case *jsonOutput:
		w = output.NewJSONWriter(out)
	default:
		w = output.NewTextWriter(out, *diagramFlag)
	}

	if *batchFile != "" {
		n := *workers
		if n < 1 {
			n = runtime.NumCPU()
		}
		if err := a.runBatchFile(ctx, *batchFile, n, w); err != nil {
			return err
		}
		return w.Close()
	}

	report, err := a.single(ctx)
	if err != nil {
		return err
	}
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, `chesscore version %s

Usage: chesscore [options]

With no position option the configured placement is set up and reported.

`, programVersion)
	flag.PrintDefaults()
}
