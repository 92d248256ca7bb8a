// Package metric defines the spacetime metric models for GravSweep.
package metric

import "fmt"

// Quadratic appends a quadratic correction to the Schwarzschild metric
// function:
//
//	m(r) = 1 - rs/r + alpha*(rs/r)²
//
// Unlike the torsional variant it declares a sweep range, so the sweep
// runner enumerates alpha variants instead of evaluating a single fixed
// instance.
type Quadratic struct {
	alpha   float64
	epsilon float64
	name    string
}

// NewQuadratic builds a quadratic model with the given alpha.
func NewQuadratic(ctx Context, alpha float64) *Quadratic {
	return &Quadratic{
		alpha:   alpha,
		epsilon: ctx.epsilon(),
		name:    fmt.Sprintf("Einstein Final (Quadratic, α=%+.2f)", alpha),
	}
}

// Name returns the display label.
func (q *Quadratic) Name() string { return q.name }

// Alpha returns the fixed correction strength.
func (q *Quadratic) Alpha() float64 { return q.alpha }

// Cacheable reports true.
func (q *Quadratic) Cacheable() bool { return true }

// SweepRange declares the alpha sweep for this family.
func (q *Quadratic) SweepRange() *SweepRange {
	return &SweepRange{Param: "alpha", Min: -1, Max: 1, Steps: 9}
}

// Metric evaluates the quadratic metric over r.
func (q *Quadratic) Metric(r []float64, p Params) Components {
	rs := p.SchwarzschildRadius()
	c := newComponents(len(r))
	for i, ri := range r {
		x := rs / ri
		m := 1 - x + q.alpha*x*x
		c.GTT[i] = -m
		c.GRR[i] = 1 / (m + q.epsilon)
		c.GThTh[i] = ri * ri
	}
	return c
}
