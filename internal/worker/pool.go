// Package worker provides a bounded pool of goroutines for CPU-bound work
// (password hashing) so that it never runs on more goroutines than the pool
// size, however many requests are in flight.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrStopped is returned by Run once the pool has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Pool is a fixed set of worker goroutines consuming a job queue.
type Pool struct {
	jobs     chan func()
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewPool starts size workers. A size below one is treated as one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		jobs: make(chan func()),
		quit: make(chan struct{}),
	}
	p.wg.Add(size)
	for range size {
		go p.work()
	}

	return p
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobs:
			job()
		case <-p.quit:
			return
		}
	}
}

// Stop signals the workers to exit and waits for running jobs to finish.
// Calling Stop more than once is a no-op.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

type result[T any] struct {
	value T
	err   error
}

// Run executes fn on one of p's workers and waits for its value. It returns
// ctx.Err() if ctx ends first; fn may still run to completion in that case,
// its value is discarded. A panic in fn is returned as an error.
func Run[T any](ctx context.Context, p *Pool, fn func() T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("could not schedule job: %w", err)
	}

	done := make(chan result[T], 1)
	job := func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: fmt.Errorf("worker job panicked: %v", r)}
			}
		}()
		done <- result[T]{value: fn()}
	}

	select {
	case p.jobs <- job:
	case <-p.quit:
		return zero, ErrStopped
	case <-ctx.Done():
		return zero, fmt.Errorf("could not schedule job: %w", ctx.Err())
	}

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, fmt.Errorf("could not wait for job: %w", ctx.Err())
	}
}
