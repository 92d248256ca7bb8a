// Package grid builds radial coordinate grids for metric evaluation.
//
// Grids are plain []float64 values with linear or logarithmic spacing.
// Construction validates the spec (point count, bounds, positivity for
// log spacing); the resulting values are handed to metric models as-is.
package grid
