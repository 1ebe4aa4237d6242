// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/nn"
)

// Errors

// ErrDimensionMismatch is returned when a vector length disagrees with the
// width a layer or network expects, or when a topology is too short.
var ErrDimensionMismatch = nn.ErrDimensionMismatch

// ErrInternalInconsistency is returned by builds with the debug tag when a
// weighted sum or updated weight is NaN or infinite.
var ErrInternalInconsistency = nn.ErrInternalInconsistency

// Network

// Network is a multilayer perceptron trained by backpropagation with momentum.
type Network = nn.Network

// New creates a network for topology, drawing every initial weight from rnd.
//
// Example:
//
//	net, err := nn.New([]int{2, 6, 2}, nn.NewUniformSource(1))
func New(topology []int, rnd RandomSource) (*Network, error) {
	return nn.New(topology, rnd)
}

// Layers

// Layer is a fixed-width group of neurons sharing one input vector.
type Layer = nn.Layer

// NewLayer creates a standalone layer of width neurons reading inFeatures values.
func NewLayer(kind Kind, inFeatures, width int, rnd RandomSource) (*Layer, error) {
	return nn.NewLayer(kind, inFeatures, width, rnd)
}

// Neuron is a single unit with a bias-first weight vector and a momentum buffer.
type Neuron = nn.Neuron

// Activations

// Kind selects the activation of a neuron.
type Kind = nn.Kind

const (
	// Hidden neurons apply leaky-ReLU.
	Hidden = nn.Hidden

	// Output neurons apply the logistic sigmoid.
	Output = nn.Output
)

// LeakySlope is the slope of the hidden activation for negative sums.
const LeakySlope = nn.LeakySlope

// Initialization

// RandomSource returns a value in [0, 1) on every call.
type RandomSource = nn.RandomSource

// NewUniformSource returns a seeded uniform source over [0, 1).
func NewUniformSource(seed uint64) RandomSource {
	return nn.NewUniformSource(seed)
}

// Loss

// OutputError returns expected - actual, the error vector Network.Learn takes.
func OutputError(expected, actual []float64) ([]float64, error) {
	return nn.OutputError(expected, actual)
}

// SquaredError returns the sum of squared components of errs.
func SquaredError(errs []float64) float64 {
	return nn.SquaredError(errs)
}
