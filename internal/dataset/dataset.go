// Package dataset provides labelled samples for training a network.
package dataset

import (
	"math"

	"github.com/born-ml/mlp/internal/nn"
)

// Sample pairs a network input with the output the network should produce.
type Sample struct {
	Input    []float64
	Expected []float64
}

// Ring draws n points uniformly from [0,1)² and labels them by their
// distance d from the origin, rejecting points with inner < d < outer.
//
// Points with d > inner (outside the ring) are labelled [1 0], points with
// d <= inner (inside it) [0 1]. Each candidate point consumes two draws
// from rnd, x first.
func Ring(n int, rnd nn.RandomSource, inner, outer float64) []Sample {
	samples := make([]Sample, 0, n)
	for len(samples) < n {
		x, y := rnd(), rnd()

		d := math.Sqrt(x*x + y*y)
		if d > inner && d < outer {
			continue
		}

		expected := []float64{0, 1}
		if d > inner {
			expected = []float64{1, 0}
		}
		samples = append(samples, Sample{
			Input:    []float64{x, y},
			Expected: expected,
		})
	}
	return samples
}

// Tail returns the last n samples, or all of them if there are fewer.
// A negative n is treated as 0.
func Tail(samples []Sample, n int) []Sample {
	n = max(n, 0)
	if n >= len(samples) {
		return samples
	}
	return samples[len(samples)-n:]
}

// OneHot returns a vector of width zeros with a 1 at index label.
//
// Panics if label is out of range.
func OneHot(label, width int) []float64 {
	if label < 0 || label >= width {
		panic("OneHot: label out of range")
	}
	v := make([]float64, width)
	v[label] = 1
	return v
}
