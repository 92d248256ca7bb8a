// Package eval provides the evaluation services for GravSweep.
package eval

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// RunIDPrefix is the prefix for evaluation run identifiers.
const RunIDPrefix = "run-"

// Run is one persisted model evaluation: the full inputs and the four
// metric component arrays they produced.
type Run struct {
	// ID is the run identifier (run-<ULID>).
	ID string `json:"id"`

	// ModelID is the registry ID the model was built from.
	ModelID string `json:"model_id"`

	// ModelName is the display name of the evaluated instance.
	ModelName string `json:"model_name"`

	// Alpha is the free-parameter value the instance was built with.
	Alpha float64 `json:"alpha"`

	// SweepID groups runs produced by the same sweep; empty for single
	// evaluations.
	SweepID string `json:"sweep_id,omitempty"`

	// Grid is the radial grid specification.
	Grid grid.Spec `json:"grid"`

	// Params are the physical parameters.
	Params metric.Params `json:"params"`

	// Components are the evaluated metric components.
	Components metric.Components `json:"components"`

	// FromCache reports whether the components were served from the
	// evaluation cache rather than recomputed.
	FromCache bool `json:"from_cache"`

	// CreatedAt is the evaluation timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// NewRunID generates a new run identifier.
func NewRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", metric.ErrInternal.WithCause(err)
	}
	return RunIDPrefix + id.String(), nil
}

// RunStore is the persistence interface the evaluator writes through.
type RunStore interface {
	// Put persists a run.
	Put(ctx context.Context, run *Run) error
}

// NopStore discards runs. Used when persistence is disabled and in tests.
type NopStore struct{}

// Put implements RunStore.
func (NopStore) Put(context.Context, *Run) error { return nil }
