// Package storage provides the run store for GravSweep.
package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{InMemory: true, GCInterval: time.Hour}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func testRun(id string) *eval.Run {
	return &eval.Run{
		ID:        id,
		ModelID:   metric.IDTorsional,
		ModelName: "Einstein Final (Torsional, α=+0.50)",
		Alpha:     0.5,
		Grid:      grid.Spec{Min: 2.5, Max: 100, Points: 3},
		Params:    metric.Params{Mass: 1, LightSpeed: 1, Gravity: 1},
		Components: metric.Components{
			GTT:   []float64{-0.2, -0.5, -0.9},
			GRR:   []float64{5, 2, 1.1},
			GThTh: []float64{6.25, 25, 10000},
			GTPhi: []float64{0, 0, 0},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestStorePutGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := testRun("run-01AAAAAAAAAAAAAAAAAAAAAAAAAA")
	if err := s.Put(ctx, want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ModelName != want.ModelName || got.Alpha != want.Alpha {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if len(got.Components.GTT) != 3 || got.Components.GTT[1] != -0.5 {
		t.Errorf("components not round-tripped: %+v", got.Components)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "run-missing")
	if !errors.Is(err, metric.ErrRunNotFound) {
		t.Errorf("Get() error = %v, want ErrRunNotFound", err)
	}
}

func TestStorePutValidation(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put(context.Background(), nil); !errors.Is(err, metric.ErrInvalidArgument) {
		t.Errorf("Put(nil) error = %v, want ErrInvalidArgument", err)
	}
	if err := s.Put(context.Background(), &eval.Run{}); !errors.Is(err, metric.ErrInvalidArgument) {
		t.Errorf("Put(no id) error = %v, want ErrInvalidArgument", err)
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// ULID-style IDs sort lexicographically by creation time.
	ids := []string{
		"run-01AAAAAAAAAAAAAAAAAAAAAAAAAA",
		"run-01BBBBBBBBBBBBBBBBBBBBBBBBBB",
		"run-01CCCCCCCCCCCCCCCCCCCCCCCCCC",
	}
	for _, id := range ids {
		if err := s.Put(ctx, testRun(id)); err != nil {
			t.Fatalf("Put(%s) error = %v", id, err)
		}
	}

	runs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("List() returned %d runs, want 3", len(runs))
	}
	if runs[0].ID != ids[2] || runs[2].ID != ids[0] {
		t.Errorf("List() order = [%s %s %s], want newest first", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(limited) != 2 || limited[0].ID != ids[2] {
		t.Errorf("List(2) = %d runs, first %s", len(limited), limited[0].ID)
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := testRun("run-01AAAAAAAAAAAAAAAAAAAAAAAAAA")
	if err := s.Put(ctx, run); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Delete(ctx, run.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, run.ID); !errors.Is(err, metric.ErrRunNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrRunNotFound", err)
	}

	// Deleting a missing run is fine.
	if err := s.Delete(ctx, "run-missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestStoreCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"run-01A", "run-01B"} {
		if err := s.Put(ctx, testRun(id)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}
	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := New(DefaultConfig(dir), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	run := testRun("run-01AAAAAAAAAAAAAAAAAAAAAAAAAA")
	if err := s.Put(ctx, run); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := New(DefaultConfig(dir), nil, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.ModelName != run.ModelName {
		t.Errorf("ModelName = %q, want %q", got.ModelName, run.ModelName)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	dst := newTestStore(t)
	ctx := context.Background()
	passphrase := []byte("orbit of mercury")

	for _, id := range []string{"run-01A", "run-01B", "run-01C"} {
		if err := src.Put(ctx, testRun(id)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}

	var buf bytes.Buffer
	exported, err := src.Export(ctx, &buf, passphrase, 0)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if exported != 3 {
		t.Errorf("Export() = %d, want 3", exported)
	}

	imported, err := dst.Import(ctx, &buf, passphrase)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if imported != 3 {
		t.Errorf("Import() = %d, want 3", imported)
	}

	count, _ := dst.Count(ctx)
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestImportWrongPassphrase(t *testing.T) {
	src := newTestStore(t)
	dst := newTestStore(t)
	ctx := context.Background()

	if err := src.Put(ctx, testRun("run-01A")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := src.Export(ctx, &buf, []byte("right passphrase"), 0); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if _, err := dst.Import(ctx, &buf, []byte("wrong passphrase")); err == nil {
		t.Error("Import() with wrong passphrase should fail")
	}
}
