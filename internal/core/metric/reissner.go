// Package metric defines the spacetime metric models for GravSweep.
package metric

import "fmt"

// ReissnerNordstrom is the charged, non-rotating baseline. The free
// parameter is the charge expressed as a dimensionless fraction q of the
// Schwarzschild radius:
//
//	m(r) = 1 - rs/r + (q*rs/(2r))²
//
// q = 0 reduces to Schwarzschild; |q| = 1 is the extremal case.
type ReissnerNordstrom struct {
	charge  float64
	epsilon float64
	name    string
}

// NewReissnerNordstrom builds a charged model with the given charge
// fraction. The registry passes it through the shared alpha slot.
func NewReissnerNordstrom(ctx Context, charge float64) *ReissnerNordstrom {
	return &ReissnerNordstrom{
		charge:  charge,
		epsilon: ctx.epsilon(),
		name:    fmt.Sprintf("Reissner-Nordström (Q=%+.2f)", charge),
	}
}

// Name returns the display label.
func (rn *ReissnerNordstrom) Name() string { return rn.name }

// Charge returns the fixed charge fraction.
func (rn *ReissnerNordstrom) Charge() float64 { return rn.charge }

// Cacheable reports true.
func (rn *ReissnerNordstrom) Cacheable() bool { return true }

// SweepRange returns nil: fixed single instance.
func (rn *ReissnerNordstrom) SweepRange() *SweepRange { return nil }

// Metric evaluates the Reissner-Nordström metric over r.
func (rn *ReissnerNordstrom) Metric(r []float64, p Params) Components {
	rs := p.SchwarzschildRadius()
	c := newComponents(len(r))
	for i, ri := range r {
		x := rs / ri
		rq := rn.charge * x / 2
		m := 1 - x + rq*rq
		c.GTT[i] = -m
		c.GRR[i] = 1 / (m + rn.epsilon)
		c.GThTh[i] = ri * ri
	}
	return c
}
