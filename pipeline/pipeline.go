// Package pipeline provides the sequential stage runner for release runs.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/slipway-ci/slipway/logging"
)

// FailurePolicy declares how the runner treats a stage error.
type FailurePolicy int

const (
	// Strict stage errors abort the run and finalize it as FAILURE.
	Strict FailurePolicy = iota
	// Tolerant stage errors are recorded and logged; the run continues and
	// the final status is unaffected.
	Tolerant
)

// Stage is a single unit of work in a release run.
type Stage interface {
	Name() string
	Policy() FailurePolicy
	Execute(ctx context.Context, run *Run) error
}

// Publisher archives the run's report and attaches a browsable link, when a
// report exists. Its error never affects the run status.
type Publisher interface {
	Publish(ctx context.Context, run *Run) error
}

// Notifier announces the finalized run. Its error never affects the run
// status.
type Notifier interface {
	Notify(ctx context.Context, run *Run) error
}

// Runner executes stages in order and applies each stage's failure policy.
// After the stage loop ends, normally or by abort, it invokes the publisher
// and then the notifier exactly once each.
type Runner struct {
	stages    []Stage
	publisher Publisher
	notifier  Notifier
	log       logging.Logger
}

// NewRunner creates a Runner. Publisher and notifier may be nil, in which
// case the corresponding hook is skipped.
func NewRunner(stages []Stage, publisher Publisher, notifier Notifier, log logging.Logger) *Runner {
	if log == nil {
		log = logging.Nop{}
	}
	return &Runner{stages: stages, publisher: publisher, notifier: notifier, log: log}
}

// Execute runs each stage sequentially against run. A strict stage error
// records a hard failure and stops the loop; a tolerant stage error records a
// soft failure and continues. It returns the finalized status.
func (r *Runner) Execute(ctx context.Context, run *Run) Status {
	for _, s := range r.stages {
		if err := ctx.Err(); err != nil {
			run.Record(HardFailure(s.Name(), fmt.Sprintf("run cancelled: %v", err), 0))
			break
		}

		r.log.Info("stage started", map[string]any{"run": run.ID, "stage": s.Name()})
		started := time.Now()
		err := s.Execute(ctx, run)
		elapsed := time.Since(started)

		if err == nil {
			run.Record(Success(s.Name(), elapsed))
			r.log.Info("stage succeeded", map[string]any{"run": run.ID, "stage": s.Name(), "elapsed": elapsed.String()})
			continue
		}

		if s.Policy() == Tolerant {
			run.Record(SoftFailure(s.Name(), err.Error(), elapsed))
			r.log.Warn("stage failed, continuing", map[string]any{"run": run.ID, "stage": s.Name(), "error": err.Error()})
			continue
		}

		run.Record(HardFailure(s.Name(), err.Error(), elapsed))
		r.log.Error("stage failed, aborting run", map[string]any{"run": run.ID, "stage": s.Name(), "error": err.Error()})
		break
	}

	// Hooks run even when the run context was cancelled: an interrupted run
	// still gets its report archived and its FAILURE notification sent.
	r.finalize(context.WithoutCancel(ctx), run)
	return run.FinalStatus()
}

// finalize runs the post-run hooks. Hook errors are logged and swallowed:
// neither report publishing nor notification may change a finalized status.
func (r *Runner) finalize(ctx context.Context, run *Run) {
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, run); err != nil {
			r.log.Warn("report publishing failed", map[string]any{"run": run.ID, "error": err.Error()})
		}
	}
	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, run); err != nil {
			r.log.Warn("notification failed", map[string]any{"run": run.ID, "error": err.Error()})
		}
	}
}
