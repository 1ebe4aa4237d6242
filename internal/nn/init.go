package nn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource returns a value in [0, 1) on every call.
//
// Weight initialization draws from it in a fixed order, so a deterministic
// source gives a reproducible network.
type RandomSource func() float64

// NewUniformSource returns a seeded uniform source over [0, 1).
//
// The returned source is not safe for concurrent use.
func NewUniformSource(seed uint64) RandomSource {
	dist := distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: rand.NewSource(seed),
	}
	return dist.Rand
}
