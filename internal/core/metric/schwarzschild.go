// Package metric defines the spacetime metric models for GravSweep.
package metric

// Schwarzschild is the uncorrected general-relativity baseline:
//
//	m(r) = 1 - rs/r
//
// It is the alpha = 0 limit of every corrected variant in the family and
// carries no free parameter of its own.
type Schwarzschild struct {
	epsilon float64
}

// NewSchwarzschild builds the baseline model. The alpha argument exists
// to satisfy the registry factory signature and is ignored.
func NewSchwarzschild(ctx Context, _ float64) *Schwarzschild {
	return &Schwarzschild{epsilon: ctx.epsilon()}
}

// Name returns the display label.
func (s *Schwarzschild) Name() string { return "Schwarzschild" }

// Cacheable reports true.
func (s *Schwarzschild) Cacheable() bool { return true }

// SweepRange returns nil: no parameter to sweep.
func (s *Schwarzschild) SweepRange() *SweepRange { return nil }

// Metric evaluates the Schwarzschild metric over r.
func (s *Schwarzschild) Metric(r []float64, p Params) Components {
	rs := p.SchwarzschildRadius()
	c := newComponents(len(r))
	for i, ri := range r {
		m := 1 - rs/ri
		c.GTT[i] = -m
		c.GRR[i] = 1 / (m + s.epsilon)
		c.GThTh[i] = ri * ri
	}
	return c
}
