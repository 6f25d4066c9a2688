// Package runner executes a selected subset of the catalog and collects
// per-unit results.
//
// Units run strictly one at a time, in registration order, so that output
// appears in the same order as the lesson narrative. A failing unit never
// aborts the batch: errors and panics are caught at the per-unit boundary
// and recorded in that unit's Result. Cancellation is cooperative and
// checked between units only.
package runner

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/praxis-cli/praxis/internal/catalog"
	"github.com/praxis-cli/praxis/internal/errors"
	"github.com/praxis-cli/praxis/internal/logging"
)

// Runner executes units from a catalog.
type Runner struct {
	catalog *catalog.Catalog
	logger  logging.Logger
	// passthrough, when non-nil, receives each unit's output as it is
	// produced, in execution order, in addition to the per-result capture.
	passthrough io.Writer
	failFast    bool
}

// Options configures a Runner.
type Options struct {
	Logger      logging.Logger
	Passthrough io.Writer
	// FailFast stops the batch after the first unit whose outcome does not
	// match its declared expectation. The mismatched Result is still
	// included; units after it do not run.
	FailFast bool
}

// New creates a runner over the given catalog.
func New(cat *catalog.Catalog, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &Runner{
		catalog:     cat,
		logger:      logger.WithComponent("runner"),
		passthrough: opts.Passthrough,
		failFast:    opts.FailFast,
	}
}

// RunAll executes every unit of every lesson in registration order. One
// Result is returned per unit, in execution order. If ctx is cancelled the
// results collected so far are returned together with the context error.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, r.catalog.UnitCount())

	for _, lessonName := range r.catalog.Lessons() {
		lesson, err := r.catalog.Lesson(lessonName)
		if err != nil {
			// Lessons() and Lesson() read the same frozen catalog.
			return results, errors.NewInternalError(errors.ErrCodeInternal, "catalog listing out of sync", err)
		}

		lessonResults, stop, err := r.runUnits(ctx, lesson, lesson.Units())
		results = append(results, lessonResults...)
		if err != nil {
			return results, err
		}
		if stop {
			break
		}
	}

	return results, nil
}

// RunLesson executes every unit of one lesson in registration order. It
// fails with ErrUnknownLesson before executing anything if the lesson does
// not exist.
func (r *Runner) RunLesson(ctx context.Context, lessonName string) ([]Result, error) {
	lesson, err := r.catalog.Lesson(lessonName)
	if err != nil {
		return nil, err
	}

	results, _, err := r.runUnits(ctx, lesson, lesson.Units())
	return results, err
}

// RunUnit executes exactly one unit. It fails with ErrUnknownLesson or
// ErrUnknownUnit before executing anything if either name does not resolve.
func (r *Runner) RunUnit(ctx context.Context, lessonName, unitName string) (Result, error) {
	lesson, err := r.catalog.Lesson(lessonName)
	if err != nil {
		return Result{}, err
	}

	unit, err := lesson.Unit(unitName)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return r.runOne(ctx, lesson.Name, *unit), nil
}

// runUnits executes units in order. The bool is true when fail-fast mode
// stopped the batch after a mismatch.
func (r *Runner) runUnits(ctx context.Context, lesson *catalog.Lesson, units []catalog.Unit) ([]Result, bool, error) {
	results := make([]Result, 0, len(units))

	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return results, false, err
		}
		result := r.runOne(ctx, lesson.Name, unit)
		results = append(results, result)
		if r.failFast && !result.Matched {
			return results, true, nil
		}
	}

	return results, false, nil
}

// runOne executes a single unit with the per-unit failure boundary: a
// returned error or a panic is recorded in the Result and never propagated.
func (r *Runner) runOne(ctx context.Context, lessonName string, unit catalog.Unit) Result {
	result := Result{
		Lesson: lessonName,
		Unit:   unit.Name,
		Expect: unit.Expect,
	}

	var buf bytes.Buffer
	var out io.Writer = &buf
	if r.passthrough != nil {
		out = io.MultiWriter(&buf, r.passthrough)
	}

	start := time.Now()
	err := r.invoke(lessonName, unit, out)
	result.Duration = time.Since(start)
	result.Output = buf.String()

	if err != nil {
		result.Outcome = OutcomeFailed
		result.Reason = err.Error()
	} else {
		result.Outcome = OutcomeSucceeded
	}

	// A declared-failure unit that fails reproduced the expected behavior;
	// the same unit completing normally is a mismatch, and symmetrically
	// for declared-success units.
	result.Matched = result.Failed() == (unit.Expect == catalog.ExpectFailure)

	if result.Matched {
		r.logger.Debug(ctx, "unit completed",
			"lesson", lessonName,
			"unit", unit.Name,
			"outcome", result.Outcome.String(),
			"duration", result.Duration.String())
	} else {
		r.logger.Warn(ctx, err, "unit did not match its declared expectation",
			"lesson", lessonName,
			"unit", unit.Name,
			"expected", unit.Expect.String(),
			"outcome", result.Outcome.String())
	}

	return result
}

// invoke calls the unit's action, converting a panic into an error.
func (r *Runner) invoke(lessonName string, unit catalog.Unit, out io.Writer) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.ErrUnitPanic(lessonName, unit.Name, recovered)
		}
	}()

	if unit.Action == nil {
		return errors.NewInternalError(errors.ErrCodeInternal, "unit has no action", nil)
	}

	return unit.Action(out)
}
