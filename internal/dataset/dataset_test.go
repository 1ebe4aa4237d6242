package dataset

import (
	"math"
	"testing"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_Labels(t *testing.T) {
	samples := Ring(500, nn.NewUniformSource(1), 0.3, 0.7)
	require.Len(t, samples, 500)

	inside := 0
	for i, s := range samples {
		require.Len(t, s.Input, 2)
		require.Len(t, s.Expected, 2)

		x, y := s.Input[0], s.Input[1]
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
		assert.GreaterOrEqual(t, y, 0.0)
		assert.Less(t, y, 1.0)

		d := math.Sqrt(x*x + y*y)
		assert.False(t, d > 0.3 && d < 0.7, "sample %d at distance %v lies in the ring", i, d)

		if d > 0.3 {
			assert.Equal(t, []float64{1, 0}, s.Expected, "sample %d", i)
		} else {
			assert.Equal(t, []float64{0, 1}, s.Expected, "sample %d", i)
			inside++
		}
	}

	// About a tenth of the accepted points fall inside the inner circle.
	assert.Greater(t, inside, 0)
	assert.Less(t, inside, 150)
}

func TestRing_Rejection(t *testing.T) {
	// (0.4, 0.3) is at distance 0.5 and rejected; (0.1, 0.1) is inside,
	// (0.9, 0.9) outside.
	rnd := sequence(0.4, 0.3, 0.1, 0.1, 0.9, 0.9)

	samples := Ring(2, rnd, 0.3, 0.7)
	require.Len(t, samples, 2)

	assert.Equal(t, []float64{0.1, 0.1}, samples[0].Input)
	assert.Equal(t, []float64{0, 1}, samples[0].Expected)
	assert.Equal(t, []float64{0.9, 0.9}, samples[1].Input)
	assert.Equal(t, []float64{1, 0}, samples[1].Expected)
}

func TestRing_Deterministic(t *testing.T) {
	a := Ring(50, nn.NewUniformSource(9), 0.3, 0.7)
	b := Ring(50, nn.NewUniformSource(9), 0.3, 0.7)
	assert.Equal(t, a, b)
}

func TestTail(t *testing.T) {
	samples := make([]Sample, 5)
	for i := range samples {
		samples[i].Input = []float64{float64(i)}
	}

	tail := Tail(samples, 2)
	require.Len(t, tail, 2)
	assert.Equal(t, 3.0, tail[0].Input[0])
	assert.Equal(t, 4.0, tail[1].Input[0])

	assert.Len(t, Tail(samples, 10), 5)
	assert.Empty(t, Tail(samples, 0))
	assert.Empty(t, Tail(samples, -3))
}

func TestOneHot(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 1}, OneHot(2, 3))
	assert.Panics(t, func() { OneHot(3, 3) })
	assert.Panics(t, func() { OneHot(-1, 3) })
}

func TestScalePixels(t *testing.T) {
	assert.Equal(t, []float64{0, 1}, ScalePixels([]byte{0, 255}))
	assert.InDelta(t, 0.5, ScalePixels([]byte{128})[0], 0.01)
}

func TestLoadMNIST_MissingDir(t *testing.T) {
	_, _, err := LoadMNIST(t.TempDir(), 10)
	require.Error(t, err)
}

func sequence(values ...float64) nn.RandomSource {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}
