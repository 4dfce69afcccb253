package executor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/pkg/idgen"
)

const (
	// DefaultQueueSize is the number of tasks that may wait for the loop
	DefaultQueueSize = 64
	// DefaultAwaitTimeout bounds Run when no timeout is configured
	DefaultAwaitTimeout = 2 * time.Second
)

// LoopConfig configures a Loop
type LoopConfig struct {
	QueueSize    int
	AwaitTimeout time.Duration
	// IDGenerator names tasks in logs; defaults to UUIDs
	IDGenerator idgen.Generator
}

// Validate checks the configured limits
func (c *LoopConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.QueueSize < 0 {
		vb.InvalidField("QueueSize", "cannot be negative")
	}
	if c.AwaitTimeout < 0 {
		vb.InvalidField("AwaitTimeout", "cannot be negative")
	}
	return vb.Build()
}

type job struct {
	ctx    context.Context
	task   Task
	future *Future
}

// Loop is the designated context: one goroutine running queued tasks in
// submission order
type Loop struct {
	queue        chan job
	awaitTimeout time.Duration
	ids          idgen.Generator

	mu      sync.Mutex
	closed  bool
	started bool
	quit    chan struct{}
	stopped chan struct{}
}

// Ensure Loop implements Executor
var _ Executor = (*Loop)(nil)

// NewLoop creates a Loop. Call Start before awaiting any task.
func NewLoop(cfg *LoopConfig) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.QueueSize
	if size == 0 {
		size = DefaultQueueSize
	}
	timeout := cfg.AwaitTimeout
	if timeout == 0 {
		timeout = DefaultAwaitTimeout
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUID("task")
	}

	return &Loop{
		queue:        make(chan job, size),
		awaitTimeout: timeout,
		ids:          ids,
		quit:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}, nil
}

// Start runs the loop until ctx is done or Stop is called
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.closed {
		return
	}
	l.started = true
	go l.run(ctx)
}

// Stop ends the loop. Tasks still queued fail with Unavailable.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	started := l.started
	close(l.quit)
	l.mu.Unlock()

	if started {
		<-l.stopped
		return
	}
	l.drain()
}

func (l *Loop) Submit(ctx context.Context, task Task) *Future {
	id := l.ids.Generate()
	if task == nil {
		return completedFuture(id, errors.InvalidArgument("task cannot be nil"))
	}

	f := newFuture(id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		f.complete(errors.Unavailable("executor is stopped"))
		return f
	}

	select {
	case l.queue <- job{ctx: context.WithoutCancel(ctx), task: task, future: f}:
		slog.DebugContext(ctx, "task queued", "task_id", id, "queued", len(l.queue))
	default:
		f.complete(errors.Unavailable("executor queue is full").WithMeta("task_id", id))
	}
	return f
}

func (l *Loop) Run(ctx context.Context, task Task) error {
	if OnContext(ctx) {
		if task == nil {
			return errors.InvalidArgument("task cannot be nil")
		}
		return task(ctx)
	}
	return l.Submit(ctx, task).Await(ctx, l.awaitTimeout)
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.stopped)

	for {
		select {
		case <-l.quit:
			l.drain()
			return
		case <-ctx.Done():
			l.mu.Lock()
			if !l.closed {
				l.closed = true
				close(l.quit)
			}
			l.mu.Unlock()
			l.drain()
			return
		case j := <-l.queue:
			select {
			case <-l.quit:
				j.future.complete(errors.Unavailable("executor stopped before task ran").
					WithMeta("task_id", j.future.id))
				l.drain()
				return
			default:
			}
			l.execute(j)
		}
	}
}

// drain fails every queued task; no task can be queued once closed is set
func (l *Loop) drain() {
	for {
		select {
		case j := <-l.queue:
			j.future.complete(errors.Unavailable("executor stopped before task ran").
				WithMeta("task_id", j.future.id))
		default:
			return
		}
	}
}

func (l *Loop) execute(j job) {
	start := time.Now()
	err := runTask(markOnContext(j.ctx), j.task)
	if err != nil {
		slog.DebugContext(j.ctx, "task failed",
			"task_id", j.future.id,
			"duration", time.Since(start),
			"error", err)
	} else {
		slog.DebugContext(j.ctx, "task completed",
			"task_id", j.future.id,
			"duration", time.Since(start))
	}
	j.future.complete(err)
}

// runTask converts a panic into an Internal error so the loop survives
func runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "task panicked", "panic", r)
			err = errors.Internalf("task panicked: %v", r)
		}
	}()
	return task(ctx)
}
