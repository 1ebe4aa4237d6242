package nn

import (
	"gonum.org/v1/gonum/floats"
)

// OutputError returns expected - actual, the error vector Learn takes.
func OutputError(expected, actual []float64) ([]float64, error) {
	if len(expected) != len(actual) {
		return nil, mismatch("output error", len(actual), len(expected))
	}
	return floats.SubTo(make([]float64, len(expected)), expected, actual), nil
}

// SquaredError returns the sum of squared components of errs.
func SquaredError(errs []float64) float64 {
	return floats.Dot(errs, errs)
}
