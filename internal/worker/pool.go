// Package worker runs move generation for many positions in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/movegen"
)

// WorkItem is one position to evaluate.
type WorkItem struct {
	Index  int // Submission order, used to sort results
	State  string
	Colour chess.Colour
}

// ProcessResult is the move list for one WorkItem.
type ProcessResult struct {
	Index  int
	State  string
	Colour chess.Colour
	Moves  []chess.Move
	Err    error
}

// ProcessFunc evaluates a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// GenerateFunc returns a ProcessFunc that runs gen over each item.
// A nil gen uses the default generator.
func GenerateFunc(gen *movegen.Generator) ProcessFunc {
	if gen == nil {
		gen = movegen.New()
	}
	return func(item WorkItem) ProcessResult {
		moves, err := gen.Generate(item.State, item.Colour)
		return ProcessResult{
			Index:  item.Index,
			State:  item.State,
			Colour: item.Colour,
			Moves:  moves,
			Err:    err,
		}
	}
}

// Pool is a fixed set of goroutines reading WorkItems from a buffered channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. processFunc is required.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It returns false when the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued items instead of processing them.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it items and returns the results sorted by
// Index. Cancelling ctx stops the pool; results gathered so far are
// returned together with ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	p.Start()

	go func() {
		defer p.Close()
		for _, item := range items {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.workChan <- item:
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.resultChan {
		results = append(results, r)
		if ctx.Err() != nil {
			p.Stop()
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, ctx.Err()
}
