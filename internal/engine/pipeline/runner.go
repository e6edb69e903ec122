// Package pipeline runs batches of per-package step sequences.
package pipeline

import (
	"context"
	"errors"

	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Step is one unit of work of a pipeline.
type Step func(ctx context.Context) error

// Pipeline is an ordered list of steps plus cleanup steps that always run.
type Pipeline struct {
	// Name identifies the pipeline in telemetry.
	Name string
	// Steps run in order until the first failure.
	Steps []Step
	// Finally runs after Steps, whatever their outcome.
	Finally []Step
}

// Runner executes pipelines concurrently.
type Runner struct {
	telemetry   ports.Telemetry
	parallelism int
}

// NewRunner creates a Runner running at most parallelism pipelines at once.
// A parallelism below one means no limit.
func NewRunner(telemetry ports.Telemetry, parallelism int) *Runner {
	return &Runner{telemetry: telemetry, parallelism: parallelism}
}

// SetParallelism changes the concurrency bound of subsequent runs.
func (r *Runner) SetParallelism(parallelism int) {
	r.parallelism = parallelism
}

// Run executes every pipeline and waits for all of them. A failing pipeline
// never cancels its siblings. Failures are returned as a *domain.BatchError in
// submission order, or nil when every pipeline succeeded.
func (r *Runner) Run(ctx context.Context, pipelines []Pipeline) error {
	errs := make([]error, len(pipelines))

	var g errgroup.Group
	if r.parallelism > 0 {
		g.SetLimit(r.parallelism)
	}

	for i, p := range pipelines {
		g.Go(func() error {
			errs[i] = r.runOne(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	return domain.NewBatchError(errs)
}

func (r *Runner) runOne(ctx context.Context, p Pipeline) error {
	ctx, vertex := r.telemetry.Record(ctx, p.Name)

	err := runSteps(ctx, p.Steps)

	var cleanupErrs []error
	for _, step := range p.Finally {
		if cerr := step(ctx); cerr != nil {
			cleanupErrs = append(cleanupErrs, cerr)
		}
	}
	if len(cleanupErrs) > 0 {
		err = errors.Join(append([]error{err}, cleanupErrs...)...)
	}

	vertex.Complete(err)
	return err
}

func runSteps(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
