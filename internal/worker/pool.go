// Package worker runs position analysis across a pool of goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-movegen-go/internal/generator"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Index int // Input order, restored by Collect
}

// ProcessResult is the outcome of analysing one position.
type ProcessResult struct {
	Index     int
	FEN       string
	State     *generator.State  // nil on error or for duplicates
	Depth     int               // perft depth, 0 when perft was not run
	Nodes     uint64            // perft count when requested
	Divide    map[string]uint64 // per-move perft when requested
	Duplicate bool              // position already seen in this batch
	Error     error
}

// ProcessFunc analyses a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
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

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		bufferSize:  bufferSize,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
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

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Collect drains the result channel and returns the results in input order.
// It stops the pool and returns early when ctx is cancelled; results already
// received are returned along with the context error.
func (p *Pool) Collect(ctx context.Context) ([]ProcessResult, error) {
	var results []ProcessResult
	for {
		if err := ctx.Err(); err != nil {
			p.Stop()
			sortByIndex(results)
			return results, err
		}
		select {
		case <-ctx.Done():
			p.Stop()
			sortByIndex(results)
			return results, ctx.Err()
		case r, ok := <-p.resultChan:
			if !ok {
				sortByIndex(results)
				return results, nil
			}
			results = append(results, r)
		}
	}
}

// Run analyses fens with a fresh pool and returns the results in input order.
func Run(ctx context.Context, fens []string, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	p := NewPoolWithOptions(processFunc, opts...)
	p.Start()

	go func() {
		defer p.Close()
		for i, fen := range fens {
			if ctx.Err() != nil || p.IsStopped() {
				return
			}
			p.Submit(WorkItem{FEN: fen, Index: i})
		}
	}()

	results, err := p.Collect(ctx)
	if err != nil {
		// Let the workers drain so the submitting goroutine can finish.
		go func() {
			for range p.resultChan {
			}
		}()
	}
	return results, err
}

func sortByIndex(results []ProcessResult) {
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
}
