// Package metric defines the spacetime metric models for GravSweep.
package metric

// DefaultEpsilon is the numeric-stability constant added to the metric
// function before inversion. It guards the exact zero of g_rr's
// denominator at the horizon; values of m very close to -epsilon still
// overflow, which is accepted behavior.
const DefaultEpsilon = 1e-10

// Context is the numeric evaluation context passed to model constructors.
//
// It is owned by the caller and shared read-only by every model built
// from it, replacing any notion of process-wide numeric configuration.
type Context struct {
	// Epsilon is the singularity guard for component inversion.
	// Zero means DefaultEpsilon.
	Epsilon float64
}

// DefaultContext returns a Context with the default epsilon.
func DefaultContext() Context {
	return Context{Epsilon: DefaultEpsilon}
}

// epsilon resolves the effective epsilon value.
func (c Context) epsilon() float64 {
	if c.Epsilon == 0 {
		return DefaultEpsilon
	}
	return c.Epsilon
}
