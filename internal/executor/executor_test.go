package executor_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/pkg/idgen"
)

type LoopTestSuite struct {
	suite.Suite
	loop   *executor.Loop
	ctx    context.Context
	cancel context.CancelFunc
}

func TestLoopTestSuite(t *testing.T) {
	suite.Run(t, new(LoopTestSuite))
}

func (s *LoopTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	loop, err := executor.NewLoop(&executor.LoopConfig{
		QueueSize:    4,
		AwaitTimeout: 200 * time.Millisecond,
		IDGenerator:  idgen.NewSequential("task"),
	})
	s.Require().NoError(err)
	s.loop = loop
	s.loop.Start(s.ctx)
}

func (s *LoopTestSuite) TearDownTest() {
	s.loop.Stop()
	s.cancel()
}

func (s *LoopTestSuite) TestRunReturnsTaskResult() {
	ran := false
	err := s.loop.Run(s.ctx, func(ctx context.Context) error {
		ran = true
		s.True(executor.OnContext(ctx))
		return nil
	})
	s.Require().NoError(err)
	s.True(ran)

	err = s.loop.Run(s.ctx, func(context.Context) error {
		return errors.NotFound("no data")
	})
	s.True(errors.IsNotFound(err))
}

func (s *LoopTestSuite) TestTasksRunInSubmissionOrder() {
	var mu sync.Mutex
	var order []int

	futures := make([]*executor.Future, 0, 3)
	for i := 1; i <= 3; i++ {
		n := i
		futures = append(futures, s.loop.Submit(s.ctx, func(context.Context) error {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
			return nil
		}))
	}

	for _, f := range futures {
		s.Require().NoError(f.Await(s.ctx, time.Second))
	}
	s.Equal([]int{1, 2, 3}, order)
}

func (s *LoopTestSuite) TestCallerIsNotOnContext() {
	s.False(executor.OnContext(s.ctx))
}

func (s *LoopTestSuite) TestNestedRunExecutesInline() {
	inner := false
	err := s.loop.Run(s.ctx, func(ctx context.Context) error {
		return s.loop.Run(ctx, func(context.Context) error {
			inner = true
			return nil
		})
	})
	s.Require().NoError(err)
	s.True(inner)
}

func (s *LoopTestSuite) TestRunTimesOut() {
	release := make(chan struct{})
	defer close(release)

	err := s.loop.Run(s.ctx, func(context.Context) error {
		<-release
		return nil
	})
	s.True(errors.IsDeadlineExceeded(err), "unexpected error: %v", err)
}

func (s *LoopTestSuite) TestAwaitCanceled() {
	release := make(chan struct{})
	defer close(release)

	f := s.loop.Submit(s.ctx, func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.True(errors.IsCanceled(f.Await(ctx, 0)))
}

func (s *LoopTestSuite) TestPanicBecomesInternal() {
	err := s.loop.Run(s.ctx, func(context.Context) error {
		panic("boom")
	})
	s.True(errors.IsInternal(err))

	s.NoError(s.loop.Run(s.ctx, func(context.Context) error { return nil }))
}

func (s *LoopTestSuite) TestQueueFull() {
	release := make(chan struct{})
	started := make(chan struct{})

	s.loop.Submit(s.ctx, func(context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	for i := 0; i < 4; i++ {
		s.loop.Submit(s.ctx, func(context.Context) error { return nil })
	}

	f := s.loop.Submit(s.ctx, func(context.Context) error { return nil })
	<-f.Done()
	s.True(errors.IsUnavailable(f.Err()))

	close(release)
}

func (s *LoopTestSuite) TestSubmitAfterStop() {
	s.loop.Stop()

	f := s.loop.Submit(s.ctx, func(context.Context) error { return nil })
	<-f.Done()
	s.True(errors.IsUnavailable(f.Err()))
}

func (s *LoopTestSuite) TestStopFailsQueuedTasks() {
	idle, err := executor.NewLoop(&executor.LoopConfig{})
	s.Require().NoError(err)

	ran := false
	queued := idle.Submit(s.ctx, func(context.Context) error {
		ran = true
		return nil
	})
	idle.Stop()

	<-queued.Done()
	s.True(errors.IsUnavailable(queued.Err()))
	s.False(ran)
}

func (s *LoopTestSuite) TestNilTask() {
	f := s.loop.Submit(s.ctx, nil)
	<-f.Done()
	s.True(errors.IsInvalidArgument(f.Err()))
}

func (s *LoopTestSuite) TestFutureID() {
	f := s.loop.Submit(s.ctx, func(context.Context) error { return nil })
	s.Equal("task_1", f.ID())
}

func TestNewLoopValidation(t *testing.T) {
	_, err := executor.NewLoop(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	_, err = executor.NewLoop(&executor.LoopConfig{QueueSize: -1})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestInline(t *testing.T) {
	e := executor.NewInline()
	ctx := context.Background()

	var onContext bool
	f := e.Submit(ctx, func(ctx context.Context) error {
		onContext = executor.OnContext(ctx)
		return nil
	})

	select {
	case <-f.Done():
	default:
		t.Fatal("inline future should be complete")
	}
	if !onContext {
		t.Fatal("inline task should run on context")
	}

	err := e.Run(ctx, func(context.Context) error { return errors.NotFound("missing") })
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
