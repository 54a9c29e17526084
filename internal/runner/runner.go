// Package runner orchestrates one reconciliation job end to end: fetch the
// dataset views from workbook storage, normalize and validate them, run the
// classification engine, and materialize the results back into the output
// collections. One run is synchronous and single-threaded; suspension points
// exist only at the storage boundary.
package runner

import (
	"context"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/endorecon/internal/workbook"
	"github.com/agentstation/endorecon/pkg/errors"
	"github.com/agentstation/endorecon/pkg/logging"
	"github.com/agentstation/endorecon/pkg/reconcile"
	"github.com/agentstation/endorecon/pkg/records"
	"github.com/agentstation/endorecon/pkg/validate"
)

// Outcome is the user-visible result of a run: either success with a
// per-bucket summary message, or failure with one diagnostic. No structured
// per-record error report is surfaced; validation detail is logged only.
type Outcome struct {
	Success        bool
	Message        string
	Classification *reconcile.Classification
	Metadata       Metadata
}

// Metadata carries timing information about the run.
type Metadata struct {
	StartTime utc.Time
	EndTime   utc.Time
	Duration  time.Duration
}

// Runner executes reconciliation jobs over immutable domain configuration.
type Runner struct {
	normalizer *records.Normalizer
	validator  *validate.Validator
	engine     reconcile.Engine
}

// New creates a Runner over the default slab table.
func New() *Runner {
	slabs := records.DefaultSlabTable()
	return &Runner{
		normalizer: records.NewNormalizer(slabs),
		validator:  validate.New(slabs),
		engine:     reconcile.New(),
	}
}

// Run executes one reconciliation job against a loaded workbook. A missing
// insurer or roster sheet is a fetch failure; a missing HR sheet is a
// legitimate input state that selects two-way mode. Writes already committed
// before a failure are not rolled back.
func (r *Runner) Run(ctx context.Context, wb *workbook.Workbook) (*Outcome, error) {
	log := logging.FromContext(ctx)
	start := utc.Now()

	log.Info().Msg("Data recon has started")

	if err := ctx.Err(); err != nil {
		return failure(start, errors.NewReconcileError("fetch", "run canceled", errors.ErrCanceled))
	}

	insurerRows := wb.Rows(workbook.SlugInsurer)
	rosterRows := wb.Rows(workbook.SlugRoster)
	if insurerRows == nil || rosterRows == nil {
		return failure(start, errors.NewReconcileError("fetch",
			"workbook is missing the insurer or roster sheet", errors.ErrNotFound))
	}

	insurer := r.normalizer.View(records.SourceInsurer, insurerRows)
	roster := r.normalizer.View(records.SourceRoster, rosterRows)

	var hr *records.DatasetView
	if hrRows := wb.Rows(workbook.SlugHR); hrRows != nil {
		hr = r.normalizer.View(records.SourceHR, hrRows)
	}

	// Validation is advisory: failures are logged per record and the
	// records still flow through classification.
	r.logValidation(ctx, insurer)
	r.logValidation(ctx, roster)
	if hr != nil {
		r.logValidation(ctx, hr)
	}

	result := r.engine.Classify(hr, insurer, roster)

	log.Info().
		Str("mode", result.Mode.String()).
		Int("to_add", len(result.ToAdd)).
		Int("to_edit", len(result.ToEdit)).
		Int("to_offboard", len(result.ToOffboard)).
		Msg("Classification complete")

	if err := ctx.Err(); err != nil {
		return failure(start, errors.NewReconcileError("materialize", "run canceled", errors.ErrCanceled))
	}
	if err := wb.Materialize(result); err != nil {
		return failure(start, errors.NewReconcileError("materialize",
			"could not rewrite output collections", err))
	}

	end := utc.Now()
	return &Outcome{
		Success:        true,
		Message:        result.String(),
		Classification: result,
		Metadata: Metadata{
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
		},
	}, nil
}

// RunFile loads a workbook from inputPath, runs reconciliation, and saves
// the rewritten workbook to outputPath.
func (r *Runner) RunFile(ctx context.Context, inputPath, outputPath string) (*Outcome, error) {
	start := utc.Now()

	wb, err := workbook.Load(inputPath)
	if err != nil {
		return failure(start, errors.NewReconcileError("fetch", "could not load workbook", err))
	}

	outcome, err := r.Run(ctx, wb)
	if err != nil {
		return outcome, err
	}

	if err := wb.Save(outputPath); err != nil {
		return failure(start, errors.NewReconcileError("materialize", "could not save workbook", err))
	}
	return outcome, nil
}

// logValidation validates a view and logs each invalid record.
func (r *Runner) logValidation(ctx context.Context, view *records.DatasetView) {
	log := logging.FromContext(ctx)

	invalid := 0
	for _, result := range r.validator.View(view) {
		if result.Valid {
			continue
		}
		invalid++
		log.Warn().
			Str("source", view.Source().String()).
			Str("key", result.Record.Key().String()).
			Strs("errors", result.Errors).
			Msg("Record failed validation")
	}

	if invalid > 0 {
		log.Warn().
			Str("source", view.Source().String()).
			Int("invalid", invalid).
			Int("total", view.Len()).
			Msg("Validation failures are advisory; records still classified")
	}
}

// failure builds the single failure outcome for a run.
func failure(start utc.Time, err error) (*Outcome, error) {
	end := utc.Now()
	return &Outcome{
		Success: false,
		Message: err.Error(),
		Metadata: Metadata{
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
		},
	}, err
}
