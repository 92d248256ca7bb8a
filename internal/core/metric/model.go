// Package metric defines the spacetime metric models for GravSweep.
package metric

// Params holds the physical parameters shared by all metric models.
//
// The fields correspond to the mass of the central body, the speed of
// light, and the gravitational constant. Geometrized unit systems
// (C = G = 1) are the common case, but nothing here assumes one.
type Params struct {
	// Mass is the mass of the central body.
	Mass float64 `json:"mass"`

	// LightSpeed is the speed of light.
	LightSpeed float64 `json:"light_speed"`

	// Gravity is the gravitational constant.
	Gravity float64 `json:"gravity"`
}

// SchwarzschildRadius returns rs = 2*G*M/c² for these parameters.
//
// LightSpeed = 0 produces ±Inf or NaN; the caller decides whether that
// is acceptable, the same way a zero radial coordinate does during
// evaluation.
func (p Params) SchwarzschildRadius() float64 {
	return 2 * p.Gravity * p.Mass / (p.LightSpeed * p.LightSpeed)
}

// Components holds the four metric component arrays for a static,
// spherically symmetric spacetime, each the length of the input grid.
//
// The naming follows the (t, r, θ, φ) coordinate convention:
// GTT is the time-time component (negative sign convention), GRR the
// radial-radial component, GThTh the angular component, and GTPhi the
// time-azimuthal cross term (identically zero for static models).
type Components struct {
	GTT   []float64 `json:"g_tt"`
	GRR   []float64 `json:"g_rr"`
	GThTh []float64 `json:"g_thth"`
	GTPhi []float64 `json:"g_tphi"`
}

// Len returns the grid length the components were evaluated on.
func (c Components) Len() int {
	return len(c.GTT)
}

// SweepRange declares how a model's free parameter is varied across a
// parameter sweep. A nil SweepRange on a model means the model is a fixed
// single instance.
//
// The range is inclusive on both ends: Steps evenly spaced values from
// Min to Max. Steps = 1 degenerates to the single value Min.
type SweepRange struct {
	// Param is the name of the swept parameter (currently always "alpha").
	Param string `json:"param"`

	// Min and Max bound the sweep, inclusive.
	Min float64 `json:"min"`
	Max float64 `json:"max"`

	// Steps is the number of variants to generate (>= 1).
	Steps int `json:"steps"`
}

// Values expands the range into its sweep values.
func (s *SweepRange) Values() []float64 {
	if s.Steps <= 1 {
		return []float64{s.Min}
	}
	vals := make([]float64, s.Steps)
	step := (s.Max - s.Min) / float64(s.Steps-1)
	for i := range vals {
		vals[i] = s.Min + float64(i)*step
	}
	// Pin the last value to Max so accumulated rounding never leaks
	// past the declared bound.
	vals[s.Steps-1] = s.Max
	return vals
}

// Model is a single metric-generating unit.
//
// Implementations must be immutable after construction: Metric is a pure
// function of the receiver's fixed parameters and its arguments, safe for
// unlimited concurrent use. Cacheable and SweepRange are declarative
// metadata read by the evaluation layer; a model never consults them
// itself.
type Model interface {
	// Name returns the human-readable display label, including the
	// model's free parameter formatted with explicit sign and two
	// decimal digits where one exists.
	Name() string

	// Cacheable reports whether outputs may be memoized by an external
	// cache keyed on (model identity, inputs).
	Cacheable() bool

	// SweepRange returns the declarative sweep descriptor, or nil for a
	// fixed single instance.
	SweepRange() *SweepRange

	// Metric evaluates the four metric component arrays over the radial
	// grid r. Division by a zero radius or a vanishing metric function
	// yields ±Inf/NaN in the output, never an error: non-finite values
	// propagate to the caller untranslated.
	Metric(r []float64, p Params) Components
}
