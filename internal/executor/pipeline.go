package executor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Step is one named stage of a Pipeline
type Step struct {
	Name string
	Run  Task
}

// Pipeline composes steps into one Task that runs them in order and stops at
// the first error. Steps with a nil Run are skipped.
func Pipeline(steps ...Step) Task {
	return func(ctx context.Context) error {
		for _, step := range steps {
			if step.Run == nil {
				continue
			}
			if err := step.Run(ctx); err != nil {
				slog.DebugContext(ctx, "pipeline step failed", "step", step.Name, "error", err)
				return errors.Wrapf(err, "%s failed", step.Name).WithMeta("step", step.Name)
			}
		}
		return nil
	}
}
