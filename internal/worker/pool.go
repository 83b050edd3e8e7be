// Package worker runs schedule extractions concurrently. The pool accepts
// any number of queued jobs; results accumulate in a collector as jobs
// finish, so workers never wait on a consumer.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of batch work
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one executed job
type Result interface {
	GetError() error
}

// Pool runs jobs across a fixed set of goroutines. Submission and result
// collection are decoupled: a caller may queue an entire batch before asking
// for results, regardless of batch size relative to the worker count.
type Pool struct {
	workers   int
	jobs      chan Job
	collector *ResultCollector
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:   workers,
		jobs:      make(chan Job, workers*2),
		collector: NewResultCollector(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// run drains the job queue until it closes or the pool is shut down. Results
// go straight into the collector, never through a channel a blocked caller
// would have to service.
func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.collector.Add(job.Execute(p.ctx))
		}
	}
}

// Submit queues a job for execution. It blocks only while every worker is
// busy and the queue is at capacity; after Shutdown it returns without
// queueing.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, lets the workers finish the remaining jobs and
// returns everything collected. Call it once, after the final Submit.
func (p *Pool) Wait() []Result {
	close(p.jobs)
	p.wg.Wait()
	return p.collector.Results()
}

// Shutdown stops the pool without draining the queue. Jobs already running
// finish; queued jobs are dropped.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// ResultCollector accumulates results across worker goroutines
type ResultCollector struct {
	mu      sync.Mutex
	results []Result
}

// NewResultCollector creates an empty collector
func NewResultCollector() *ResultCollector {
	return &ResultCollector{results: make([]Result, 0)}
}

// Add appends a result (thread-safe)
func (c *ResultCollector) Add(result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

// Results returns all collected results
func (c *ResultCollector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}
