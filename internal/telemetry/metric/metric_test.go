// Package metric provides Prometheus metrics for GravSweep.
package metric

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRegistryInstruments(t *testing.T) {
	reg, promReg := NewRegistry()
	if promReg == nil {
		t.Fatal("prometheus registry is nil")
	}

	reg.EvaluationsTotal.WithLabelValues("schwarzschild").Inc()
	reg.EvalDuration.WithLabelValues("schwarzschild").Observe(0.0025)
	reg.CacheHits.Inc()
	reg.CacheMisses.Add(3)
	reg.SweepsTotal.Inc()
	reg.SweepVariants.Add(9)
	reg.RunsStored.Inc()
	reg.EvalPoints.Add(128)
	reg.StoreSize.Set(4096)

	families, err := promReg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	names := make(map[string]bool)
	for _, fam := range families {
		names[fam.GetName()] = true
	}

	want := []string{
		"gravsweep_evaluations_total",
		"gravsweep_evaluation_duration_seconds",
		"gravsweep_cache_hits_total",
		"gravsweep_cache_misses_total",
		"gravsweep_sweeps_total",
		"gravsweep_sweep_variants_total",
		"gravsweep_runs_stored_total",
		"gravsweep_evaluation_points_total",
		"gravsweep_store_size_bytes",
	}
	for _, name := range want {
		if !names[name] {
			t.Errorf("metric %q not gathered", name)
		}
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	reg, promReg := NewRegistry()
	reg.CacheHits.Inc()

	srv := httptest.NewServer(Handler(promReg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	buf := make([]byte, 1<<16)
	n, _ := resp.Body.Read(buf)
	body := string(buf[:n])
	if !strings.Contains(body, "gravsweep_cache_hits_total 1") {
		t.Errorf("metrics body missing cache hit count:\n%s", body)
	}
}
