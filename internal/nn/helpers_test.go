package nn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sequenceSource cycles through values, one per call.
func sequenceSource(values ...float64) RandomSource {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

// constSource always returns v.
func constSource(v float64) RandomSource {
	return func() float64 { return v }
}

// newTestLayer builds a layer that is known to have valid widths.
func newTestLayer(t *testing.T, kind Kind, inFeatures, width int, rnd RandomSource) *Layer {
	t.Helper()

	l, err := NewLayer(kind, inFeatures, width, rnd)
	require.NoError(t, err)
	return l
}
