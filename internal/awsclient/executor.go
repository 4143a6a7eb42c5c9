package awsclient

//
// Asynchronous execution
//

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Executor runs tasks submitted by [SubmitAsync] and [SubmitCallable].
type Executor interface {
	Submit(task func())
}

// GoroutineExecutor runs every task in its own goroutine.
type GoroutineExecutor struct{}

var _ Executor = GoroutineExecutor{}

// Submit implements Executor.
func (GoroutineExecutor) Submit(task func()) {
	go task()
}

// PooledExecutor runs at most a fixed number of tasks at a time. Submit
// blocks while all the workers are busy.
type PooledExecutor struct {
	group errgroup.Group
}

var _ Executor = &PooledExecutor{}

// NewPooledExecutor creates a [*PooledExecutor] with the given number of
// workers. A non-positive value means no limit.
func NewPooledExecutor(workers int) *PooledExecutor {
	pe := &PooledExecutor{}
	if workers > 0 {
		pe.group.SetLimit(workers)
	}
	return pe
}

// Submit implements Executor.
func (pe *PooledExecutor) Submit(task func()) {
	pe.group.Go(func() error {
		task()
		return nil
	})
}

// Wait waits for all the submitted tasks to complete.
func (pe *PooledExecutor) Wait() {
	_ = pe.group.Wait()
}

// Future is the pending result of a call submitted with [SubmitCallable].
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Done returns a channel closed when the call completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get waits for the call to complete, or for ctx to be done, and
// returns the call's result.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// SubmitCallable runs call on the executor of c and returns a [*Future]
// for its result.
func SubmitCallable[T any](ctx context.Context, c *Client, call func(ctx context.Context) (T, error)) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}
	c.config.executor().Submit(func() {
		defer close(future.done)
		future.value, future.err = call(ctx)
	})
	return future
}

// SubmitAsync runs call on the executor of c and passes its result to handler,
// which runs on the executor as well.
func SubmitAsync[T any](ctx context.Context, c *Client,
	call func(ctx context.Context) (T, error), handler func(ctx context.Context, value T, err error)) {
	c.config.executor().Submit(func() {
		value, err := call(ctx)
		handler(ctx, value, err)
	})
}
