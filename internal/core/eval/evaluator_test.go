// Package eval provides the evaluation services for GravSweep.
package eval

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// memStore collects runs in memory for assertions.
type memStore struct {
	mu   sync.Mutex
	runs []*Run
}

func (s *memStore) Put(_ context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

func testRequest() Request {
	alpha := 0.5
	return Request{
		ModelID: metric.IDTorsional,
		Alpha:   &alpha,
		Grid:    grid.Spec{Min: 2.5, Max: 100, Points: 32, Spacing: grid.SpacingLinear},
		Params:  metric.Params{Mass: 1, LightSpeed: 1, Gravity: 1},
	}
}

func TestEvaluateKnownValues(t *testing.T) {
	e, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	alpha := 0.5
	run, err := e.Evaluate(context.Background(), Request{
		ModelID: metric.IDTorsional,
		Alpha:   &alpha,
		Grid:    grid.Spec{Min: 4, Max: 4, Points: 1},
		Params:  metric.Params{Mass: 1, LightSpeed: 1, Gravity: 1},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if !strings.HasPrefix(run.ID, RunIDPrefix) {
		t.Errorf("run ID = %q, want %q prefix", run.ID, RunIDPrefix)
	}
	if run.ModelName != "Einstein Final (Torsional, α=+0.50)" {
		t.Errorf("ModelName = %q", run.ModelName)
	}
	if got, want := run.Components.GTT[0], -0.53125; math.Abs(got-want) > 1e-12 {
		t.Errorf("GTT[0] = %v, want %v", got, want)
	}
	if got, want := run.Components.GThTh[0], 16.0; got != want {
		t.Errorf("GThTh[0] = %v, want %v", got, want)
	}
}

func TestEvaluateCacheHit(t *testing.T) {
	store := &memStore{}
	e, err := New(Config{Store: store})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first, err := e.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("first Evaluate() error = %v", err)
	}
	if first.FromCache {
		t.Error("first evaluation should not be a cache hit")
	}

	second, err := e.Evaluate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("second Evaluate() error = %v", err)
	}
	if !second.FromCache {
		t.Error("second identical evaluation should hit the cache")
	}

	// Cached and recomputed outputs are identical.
	for i := range first.Components.GTT {
		if first.Components.GTT[i] != second.Components.GTT[i] {
			t.Fatalf("cached GTT[%d] differs", i)
		}
	}

	// Both runs were persisted regardless of cache state.
	if store.count() != 2 {
		t.Errorf("stored runs = %d, want 2", store.count())
	}
	if e.CacheLen() != 1 {
		t.Errorf("CacheLen() = %d, want 1", e.CacheLen())
	}
}

func TestEvaluateDistinctAlphasDoNotCollide(t *testing.T) {
	e, _ := New(Config{})

	req := testRequest()
	run1, err := e.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	other := 0.75
	req.Alpha = &other
	run2, err := e.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if run2.FromCache {
		t.Error("different alpha must not hit the cache")
	}
	if run1.Components.GTT[0] == run2.Components.GTT[0] {
		t.Error("different alphas produced identical GTT")
	}
}

func TestEvaluateUnknownModel(t *testing.T) {
	e, _ := New(Config{})

	_, err := e.Evaluate(context.Background(), Request{
		ModelID: "no-such-model",
		Grid:    grid.Spec{Min: 2, Max: 10, Points: 4},
		Params:  metric.Params{Mass: 1, LightSpeed: 1, Gravity: 1},
	})
	if !errors.Is(err, metric.ErrModelNotFound) {
		t.Errorf("Evaluate() error = %v, want ErrModelNotFound", err)
	}
}

func TestEvaluateInvalidGrid(t *testing.T) {
	e, _ := New(Config{})

	req := testRequest()
	req.Grid = grid.Spec{Min: 10, Max: 2, Points: 4}
	_, err := e.Evaluate(context.Background(), req)
	if !errors.Is(err, metric.ErrInvalidArgument) {
		t.Errorf("Evaluate() error = %v, want ErrInvalidArgument", err)
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	e, _ := New(Config{CacheSize: 16})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Evaluate(context.Background(), testRequest()); err != nil {
				t.Errorf("Evaluate() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if e.CacheLen() != 1 {
		t.Errorf("CacheLen() = %d, want 1", e.CacheLen())
	}
}

func TestEffectiveAlphaDefault(t *testing.T) {
	e, _ := New(Config{})

	run, err := e.Evaluate(context.Background(), Request{
		ModelID: metric.IDTorsional,
		Grid:    grid.Spec{Min: 4, Max: 4, Points: 1},
		Params:  metric.Params{Mass: 1, LightSpeed: 1, Gravity: 1},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if run.Alpha != 0 {
		t.Errorf("Alpha = %v, want default 0", run.Alpha)
	}
	if run.ModelName != "Einstein Final (Torsional, α=+0.00)" {
		t.Errorf("ModelName = %q", run.ModelName)
	}
}
