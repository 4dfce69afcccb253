package executor

import (
	"context"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/pkg/idgen"
)

// Inline runs every task synchronously on the caller's goroutine, treating
// the caller as the designated context
type Inline struct {
	ids idgen.Generator
}

// Ensure Inline implements Executor
var _ Executor = (*Inline)(nil)

// NewInline creates a synchronous executor
func NewInline() *Inline {
	return &Inline{ids: idgen.NewSequential("inline")}
}

func (e *Inline) Submit(ctx context.Context, task Task) *Future {
	id := e.ids.Generate()
	if task == nil {
		return completedFuture(id, errors.InvalidArgument("task cannot be nil"))
	}
	return completedFuture(id, runTask(markOnContext(ctx), task))
}

func (e *Inline) Run(ctx context.Context, task Task) error {
	return e.Submit(ctx, task).Err()
}
