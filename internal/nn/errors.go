package nn

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDimensionMismatch is returned when a vector length disagrees with the
// width a layer or network expects, or when a topology is too short.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrInternalInconsistency is returned by debug builds when a weighted sum
// or an updated weight is NaN or infinite.
var ErrInternalInconsistency = errors.New("internal inconsistency")

// mismatch wraps ErrDimensionMismatch with call-site context.
func mismatch(op string, got, want int) error {
	return errors.Wrapf(ErrDimensionMismatch, "%s: got %d values, want %d", op, got, want)
}

// checkFinite reports the first non-finite value in values.
// It is a no-op unless the package is built with the debug tag.
func checkFinite(op string, values ...float64) error {
	if !debugChecks {
		return nil
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInternalInconsistency, "%s: non-finite value %v at index %d", op, v, i)
		}
	}
	return nil
}
