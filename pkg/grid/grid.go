// Package grid builds radial coordinate grids for metric evaluation.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Spacing selects how grid points are distributed between the bounds.
type Spacing string

const (
	// SpacingLinear distributes points evenly.
	SpacingLinear Spacing = "linear"

	// SpacingLog distributes points evenly in log space. Bounds must be
	// strictly positive.
	SpacingLog Spacing = "log"
)

// Common validation errors.
var (
	ErrNoPoints      = errors.New("grid: points must be at least 1")
	ErrInvertedRange = errors.New("grid: min must not exceed max")
	ErrLogBounds     = errors.New("grid: log spacing requires strictly positive bounds")
	ErrBadSpacing    = errors.New("grid: unknown spacing")
)

// Spec describes a radial grid.
type Spec struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Points  int     `json:"points"`
	Spacing Spacing `json:"spacing"`
}

// Validate checks the spec without materializing it.
func (s Spec) Validate() error {
	if s.Points < 1 {
		return ErrNoPoints
	}
	if s.Min > s.Max {
		return ErrInvertedRange
	}
	switch s.Spacing {
	case SpacingLinear, "":
	case SpacingLog:
		if s.Min <= 0 || s.Max <= 0 {
			return ErrLogBounds
		}
	default:
		return fmt.Errorf("%w: %q", ErrBadSpacing, s.Spacing)
	}
	return nil
}

// Build materializes the grid values.
func (s Spec) Build() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Spacing {
	case SpacingLog:
		return Logspace(s.Min, s.Max, s.Points), nil
	default:
		return Linspace(s.Min, s.Max, s.Points), nil
	}
}

// Linspace returns n evenly spaced values from min to max, inclusive.
// n = 1 returns just min.
func Linspace(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	vals := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	vals[n-1] = max
	return vals
}

// Logspace returns n logarithmically spaced values from min to max,
// inclusive. Bounds must be strictly positive.
func Logspace(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	logMin := math.Log(min)
	logMax := math.Log(max)
	vals := make([]float64, n)
	step := (logMax - logMin) / float64(n-1)
	for i := range vals {
		vals[i] = math.Exp(logMin + float64(i)*step)
	}
	vals[0] = min
	vals[n-1] = max
	return vals
}
