// Package metric defines the spacetime metric models for GravSweep.
package metric

import "fmt"

// Torsional is a quartic correction term appended to the Schwarzschild
// metric function, a toy model for torsional effects:
//
//	m(r) = 1 - rs/r + alpha*(rs/r)⁴
//
// alpha is fixed at construction and immutable thereafter. Any finite
// alpha is accepted; no range validation is performed.
type Torsional struct {
	alpha   float64
	epsilon float64
	name    string
}

// NewTorsional builds a torsional model with the given alpha.
func NewTorsional(ctx Context, alpha float64) *Torsional {
	return &Torsional{
		alpha:   alpha,
		epsilon: ctx.epsilon(),
		name:    fmt.Sprintf("Einstein Final (Torsional, α=%+.2f)", alpha),
	}
}

// Name returns the display label, e.g. "Einstein Final (Torsional, α=+0.50)".
func (t *Torsional) Name() string { return t.name }

// Alpha returns the fixed correction strength.
func (t *Torsional) Alpha() float64 { return t.alpha }

// Cacheable reports true: outputs depend only on alpha and the inputs.
func (t *Torsional) Cacheable() bool { return true }

// SweepRange returns nil: this variant is a fixed single instance.
func (t *Torsional) SweepRange() *SweepRange { return nil }

// Metric evaluates the torsional quartic metric over r.
func (t *Torsional) Metric(r []float64, p Params) Components {
	rs := p.SchwarzschildRadius()
	c := newComponents(len(r))
	for i, ri := range r {
		x := rs / ri
		m := 1 - x + t.alpha*x*x*x*x
		c.GTT[i] = -m
		c.GRR[i] = 1 / (m + t.epsilon)
		c.GThTh[i] = ri * ri
	}
	return c
}

// newComponents allocates the four component arrays for an n-point grid.
// GTPhi stays zero-filled for every static model.
func newComponents(n int) Components {
	return Components{
		GTT:   make([]float64, n),
		GRR:   make([]float64, n),
		GThTh: make([]float64, n),
		GTPhi: make([]float64, n),
	}
}
