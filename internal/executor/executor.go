// Package executor runs live-state work on the single designated context.
//
// The game client allows prayer settings to be read and written only from its
// own thread. Callers submit Tasks to an Executor instead of touching live
// state directly; Loop serializes them on one goroutine and Inline runs them
// synchronously for tests and one-shot CLI commands.
package executor

import (
	"context"
	"time"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Task is a unit of work for the designated context
type Task func(ctx context.Context) error

// Executor accepts tasks for the designated context
type Executor interface {
	// Submit queues a task and returns immediately
	Submit(ctx context.Context, task Task) *Future

	// Run submits a task and waits for it, bounded by the executor's await
	// timeout. A caller already on the designated context runs it inline.
	Run(ctx context.Context, task Task) error
}

type onContextKey struct{}

// markOnContext tags ctx as running on the designated context
func markOnContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, onContextKey{}, true)
}

// OnContext reports whether ctx belongs to a task running on the designated
// context
func OnContext(ctx context.Context) bool {
	on, _ := ctx.Value(onContextKey{}).(bool)
	return on
}

// Future is the pending result of a submitted task
type Future struct {
	id   string
	done chan struct{}
	err  error
}

func newFuture(id string) *Future {
	return &Future{id: id, done: make(chan struct{})}
}

// completedFuture returns a future that has already finished with err
func completedFuture(id string, err error) *Future {
	f := newFuture(id)
	f.complete(err)
	return f
}

func (f *Future) complete(err error) {
	f.err = err
	close(f.done)
}

// ID returns the task id used in logs
func (f *Future) ID() string {
	return f.id
}

// Done is closed once the task has finished
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Err returns the task's error. Only meaningful after Done is closed.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Await blocks until the task finishes, the timeout elapses or ctx is done.
// A timeout of zero waits without limit. The task keeps running after a
// timeout; only the wait is abandoned.
func (f *Future) Await(ctx context.Context, timeout time.Duration) error {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-f.done:
		return f.err
	case <-expired:
		return errors.DeadlineExceededf("task %s did not complete within %s", f.id, timeout).
			WithMeta("task_id", f.id)
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "stopped waiting for task "+f.id)
	}
}
