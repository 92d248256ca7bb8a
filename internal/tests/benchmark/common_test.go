package benchmark

import (
	"io"
	"testing"
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/internal/storage"
	"github.com/gravsweep/gravsweep-go/internal/telemetry/logger"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// GridSizes are the grid point counts benchmarks sweep over.
var GridSizes = []int{100, 1000, 10000, 100000}

var benchParams = metric.Params{Mass: 1, LightSpeed: 1, Gravity: 1}

func benchGrid(points int) grid.Spec {
	return grid.Spec{Min: 2.5, Max: 1000, Points: points, Spacing: grid.SpacingLog}
}

// newEvaluator builds an evaluator without persistence.
func newEvaluator(b *testing.B) *eval.Evaluator {
	b.Helper()
	e, err := eval.New(eval.Config{
		CacheSize: 1024,
		Workers:   4,
		Logger:    quietLogger(b),
	})
	if err != nil {
		b.Fatalf("eval.New: %v", err)
	}
	return e
}

// newStore builds an in-memory run store.
func newStore(b *testing.B) *storage.Store {
	b.Helper()
	s, err := storage.New(storage.Config{
		InMemory:   true,
		GCInterval: time.Hour,
	}, quietLogger(b), nil)
	if err != nil {
		b.Fatalf("storage.New: %v", err)
	}
	b.Cleanup(func() { s.Close() })
	return s
}

func quietLogger(b *testing.B) logger.Logger {
	b.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "text", Output: io.Discard})
	if err != nil {
		b.Fatalf("logger.New: %v", err)
	}
	return log
}
