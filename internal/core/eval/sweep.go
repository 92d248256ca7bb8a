// Package eval provides the evaluation services for GravSweep.
package eval

import (
	"context"
	"sync"
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// SweepIDPrefix is the prefix for sweep identifiers.
const SweepIDPrefix = "swp-"

// SweepRequest describes a parameter sweep over one model family.
type SweepRequest struct {
	// ModelID selects the registered model family.
	ModelID string `json:"model_id"`

	// Grid is the radial grid every variant is evaluated on.
	Grid grid.Spec `json:"grid"`

	// Params are the physical parameters shared by all variants.
	Params metric.Params `json:"params"`
}

// SweepSummary reports the outcome of a sweep.
type SweepSummary struct {
	// SweepID identifies the sweep (swp-<ULID>).
	SweepID string `json:"sweep_id"`

	// ModelID is the swept family.
	ModelID string `json:"model_id"`

	// Param is the swept parameter name; empty when the model declared
	// no sweep and a single fixed evaluation ran instead.
	Param string `json:"param,omitempty"`

	// Alphas are the evaluated parameter values, in sweep order.
	Alphas []float64 `json:"alphas"`

	// RunIDs are the persisted run IDs, aligned with Alphas.
	RunIDs []string `json:"run_ids"`

	// Elapsed is the wall-clock sweep duration.
	Elapsed time.Duration `json:"elapsed"`
}

// Sweep evaluates every variant a model's sweep range declares.
//
// Variants run on a bounded worker pool, throttled by the evaluator's
// rate limiter. A model without a sweep range evaluates once at its
// default parameter. Context cancellation aborts remaining variants and
// returns the context error.
func (e *Evaluator) Sweep(ctx context.Context, req SweepRequest) (*SweepSummary, error) {
	// Build a probe instance to read the declared sweep range.
	probe, err := metric.Build(req.ModelID, e.numCtx, nil)
	if err != nil {
		return nil, err
	}
	if err := req.Grid.Validate(); err != nil {
		return nil, metric.ErrInvalidArgument.WithDetails(err.Error()).WithCause(err)
	}

	id, err := NewRunID()
	if err != nil {
		return nil, err
	}
	sweepID := SweepIDPrefix + id[len(RunIDPrefix):]

	sweep := probe.SweepRange()
	var alphas []float64
	param := ""
	if sweep != nil {
		alphas = sweep.Values()
		param = sweep.Param
	} else {
		spec, err := metric.Lookup(req.ModelID)
		if err != nil {
			return nil, err
		}
		alphas = []float64{spec.DefaultAlpha}
	}

	start := time.Now()
	runIDs := make([]string, len(alphas))
	errs := make([]error, len(alphas))

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, alpha := range alphas {
		if err := e.limiter.Wait(ctx); err != nil {
			errs[i] = err
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, alpha float64) {
			defer wg.Done()
			defer func() { <-sem }()

			a := alpha
			run, err := e.evaluate(ctx, Request{
				ModelID: req.ModelID,
				Alpha:   &a,
				Grid:    req.Grid,
				Params:  req.Params,
			}, sweepID)
			if err != nil {
				errs[i] = err
				return
			}
			runIDs[i] = run.ID
		}(i, alpha)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	e.metrics.SweepsTotal.Inc()
	e.metrics.SweepVariants.Add(float64(len(alphas)))

	summary := &SweepSummary{
		SweepID: sweepID,
		ModelID: req.ModelID,
		Param:   param,
		Alphas:  alphas,
		RunIDs:  runIDs,
		Elapsed: time.Since(start),
	}

	e.log.Info("sweep complete",
		"sweep_id", summary.SweepID,
		"model", req.ModelID,
		"variants", len(alphas),
		"elapsed", summary.Elapsed)

	return summary, nil
}
