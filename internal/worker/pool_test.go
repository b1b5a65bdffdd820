package worker

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	cerrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/movegen"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

var emptyState = strings.Repeat("0", chess.NumSquares)

// noopProcessFunc returns a process function that echoes the item.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, State: item.State}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i, State: emptyState})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	pool.Close()
}

func TestPoolTrySubmit(t *testing.T) {
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(100 * time.Millisecond)
		return ProcessResult{}
	}

	pool := NewPool(slow, WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}

	// Timing-dependent; only checks that a full buffer does not block.
	pool.TrySubmit(WorkItem{Index: 2})

	pool.Stop()
	if pool.TrySubmit(WorkItem{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestRun_SortedResults(t *testing.T) {
	variableDelay := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	const numItems = 20
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = WorkItem{Index: i}
	}

	results, err := NewPool(variableDelay, WithWorkers(4)).Run(context.Background(), items)
	testutil.AssertNoError(t, err)
	if len(results) != numItems {
		t.Fatalf("results = %d; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d", i, r.Index)
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]WorkItem, 100)
	for i := range items {
		items[i] = WorkItem{Index: i}
	}
	results, err := NewPool(noopProcessFunc(), WithWorkers(2)).Run(ctx, items)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(results) == len(items) {
		t.Logf("all %d items finished before cancellation was seen", len(results))
	}
}

func TestGenerateFunc(t *testing.T) {
	start := "RNBQKBNR" + "PPPPPPPP" + strings.Repeat("0", 32) + "pppppppp" + "rnbqkbnr"
	rook := testutil.State(map[string]byte{"a1": 'R'})

	items := []WorkItem{
		{Index: 0, State: start, Colour: chess.White},
		{Index: 1, State: start, Colour: chess.Black},
		{Index: 2, State: "bad", Colour: chess.White},
		{Index: 3, State: rook, Colour: chess.White},
	}

	results, err := NewPool(GenerateFunc(nil), WithWorkers(3)).Run(context.Background(), items)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 4)

	testutil.AssertEqual(t, len(results[0].Moves), 20)
	testutil.AssertEqual(t, len(results[1].Moves), 20)
	if !errors.Is(results[2].Err, cerrors.ErrMalformedState) {
		t.Errorf("results[2].Err = %v, want ErrMalformedState", results[2].Err)
	}
	testutil.AssertEqual(t, len(results[3].Moves), 0)

	sliding := GenerateFunc(movegen.New(movegen.WithSlidingPieces(true)))
	testutil.AssertEqual(t, len(sliding(items[3]).Moves), 14)
}
