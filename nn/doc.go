// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a multilayer perceptron trained by backpropagation
// with momentum.
//
// # Overview
//
// This package contains:
//   - Network: ordered layers built from a topology such as [2 6 2]
//   - Layer, Neuron: the units a network is made of
//   - Activations: leaky-ReLU (Hidden) and logistic sigmoid (Output)
//   - Loss helpers: OutputError, SquaredError
//   - Initialization: RandomSource, NewUniformSource
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/nn"
//
//	func main() {
//	    net, err := nn.New([]int{2, 6, 2}, nn.NewUniformSource(1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Run([]float64{0.2, 0.9})
//	    errs, err := nn.OutputError([]float64{1, 0}, out)
//	    err = net.Learn(errs, 0.05, 0.2)
//	}
//
// # Topology
//
// The first entry is the input width and the last the output width; every
// entry in between adds a hidden layer. Each neuron holds 1 + (previous
// width) weights, the bias first.
//
// # Training
//
// Learn must follow the Run whose output the errors were computed from.
// It walks the layers from last to first, computing each layer's error
// gradient for the layer behind it before updating its own weights:
//
//	delta = momentum * previousDelta + lr * derivative * error * input
//
// The output layer's derivative is fixed at 1 even though it applies a
// sigmoid on the forward pass.
//
// # Errors
//
// Vectors of the wrong length return ErrDimensionMismatch. Builds with the
// debug tag also check every weighted sum and weight for NaN and infinity
// and return ErrInternalInconsistency.
//
// # Concurrency
//
// A Network is not safe for concurrent use. Use Network.Clone to give
// each goroutine its own replica.
package nn
