package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// batchLine is one position line of a batch file.
type batchLine struct {
	lineNo int
	text   string
	item   worker.WorkItem
	err    error
}

// parseBatchLine reads "<state> [colour]" or a FEN string.
func parseBatchLine(text string, def chess.Colour) (string, chess.Colour, error) {
	fields := strings.Fields(text)
	if len(fields[0]) == notation.StateLen && notation.ValidateState(fields[0]) == nil {
		colour := def
		if len(fields) > 1 {
			c, err := chess.ParseColour(fields[1])
			if err != nil {
				return "", chess.White, err
			}
			colour = c
		}
		return fields[0], colour, nil
	}
	board, colour, err := notation.ParseFEN(text)
	if err != nil {
		return "", chess.White, err
	}
	return notation.EncodeState(board), colour, nil
}

// readBatch parses every non-blank, non-comment line. Lines that fail to
// parse keep their error and are reported in place. With a detector,
// positions already seen are dropped.
func readBatch(r io.Reader, def chess.Colour, seen *hashing.DuplicateDetector) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		state, colour, err := parseBatchLine(text, def)
		if err == nil && seen != nil {
			if _, dup := seen.CheckAndAdd(len(lines), state, colour); dup {
				continue
			}
		}
		bl := batchLine{
			lineNo: lineNo,
			text:   text,
			item:   worker.WorkItem{Index: len(lines), State: state, Colour: colour},
			err:    err,
		}
		lines = append(lines, bl)
	}
	return lines, scanner.Err()
}

func (a *app) runBatchFile(ctx context.Context, path string, numWorkers int, w output.ReportWriter) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()
	return a.runBatch(ctx, f, numWorkers, w)
}

// runBatch evaluates every position of r on a worker pool and writes the
// reports in input order.
func (a *app) runBatch(ctx context.Context, r io.Reader, numWorkers int, w output.ReportWriter) error {
	var seen *hashing.DuplicateDetector
	if *uniqueFlag {
		seen = hashing.NewDuplicateDetector(0)
	}
	lines, err := readBatch(r, a.overrideColour(chess.White), seen)
	if err != nil {
		return fmt.Errorf("reading batch: %w", err)
	}

	items := make([]worker.WorkItem, 0, len(lines))
	for _, bl := range lines {
		if bl.err == nil {
			items = append(items, bl.item)
		}
	}

	pool := worker.NewPool(worker.GenerateFunc(a.gen),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(numWorkers*2),
	)
	results, runErr := pool.Run(ctx, items)

	byIndex := make(map[int]worker.ProcessResult, len(results))
	for _, res := range results {
		byIndex[res.Index] = res
	}

	failed := 0
	for i, bl := range lines {
		rep := &output.Report{Index: i, Source: fmt.Sprintf("line %d", bl.lineNo)}
		res, ok := byIndex[i]
		switch {
		case bl.err != nil:
			rep.Err = bl.err
		case !ok:
			continue // cancelled before it ran
		default:
			rep.State = res.State
			rep.ToMove = res.Colour
			rep.Moves = res.Moves
			rep.Err = res.Err
		}
		if rep.Err != nil {
			failed++
		}
		if err := w.WriteReport(rep); err != nil {
			return err
		}
	}

	fields := []zap.Field{
		zap.Int("positions", len(lines)),
		zap.Int("failed", failed),
		zap.Int("workers", pool.NumWorkers()),
	}
	if seen != nil {
		fields = append(fields, zap.Int("duplicates", seen.DuplicateCount()))
	}
	a.logger.Info("batch_done", fields...)
	return runErr
}
