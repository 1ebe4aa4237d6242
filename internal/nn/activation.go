package nn

import (
	"fmt"
	"math"
)

// LeakySlope is the slope of the hidden activation for negative sums.
const LeakySlope = 0.01

// Kind selects the activation of a neuron. It is fixed at construction.
type Kind uint8

const (
	// Hidden neurons apply leaky-ReLU: f(x) = x for x >= 0, LeakySlope*x otherwise.
	Hidden Kind = iota

	// Output neurons apply the logistic sigmoid σ(x) = 1 / (1 + exp(-x)).
	//
	// The derivative stored for the backward pass is always 1, so the error
	// signal reaches the output weights unscaled by σ'(x). Changing this
	// changes convergence of every trained network.
	Output
)

// String returns the activation name.
func (k Kind) String() string {
	switch k {
	case Hidden:
		return "leaky-relu"
	case Output:
		return "sigmoid"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// activate returns the activation of sum and the derivative the backward
// pass uses for it.
func activate(kind Kind, sum float64) (output, derivative float64) {
	switch kind {
	case Hidden:
		if sum >= 0 {
			return sum, 1
		}
		return LeakySlope * sum, LeakySlope
	case Output:
		return 1 / (1 + math.Exp(-sum)), 1
	default:
		panic(fmt.Sprintf("activate: unknown kind %d", kind))
	}
}
