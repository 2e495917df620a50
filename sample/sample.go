// Package sample builds the evenly spaced domains the models are evaluated on.
package sample

import "gonum.org/v1/gonum/floats"

// Linspace returns n evenly spaced values over [lo, hi], both endpoints
// included. A single sample is lo; n < 1 yields an empty slice.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n < 1:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	// the last sample must be exactly hi
	xs[n-1] = hi
	return xs
}
