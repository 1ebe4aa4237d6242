// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/nn"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config holds the learning rate and momentum factor.
type Config = optim.Config

// ErrInvalidConfig is returned for out-of-range hyperparameters.
var ErrInvalidConfig = optim.ErrInvalidConfig

// DefaultConfig returns LR 0.05 and momentum 0.2.
func DefaultConfig() Config {
	return optim.DefaultConfig()
}

// Momentum

// Momentum represents gradient descent with momentum bound to one network.
type Momentum = optim.Momentum

// NewMomentum creates a new momentum optimizer for net.
//
// Example:
//
//	net, _ := nn.New([]int{2, 6, 2}, nn.NewUniformSource(1))
//	optimizer, err := optim.NewMomentum(net, optim.Config{
//	    LR:       0.05,
//	    Momentum: 0.2,
//	})
func NewMomentum(net *nn.Network, config Config) (*Momentum, error) {
	return optim.NewMomentum(net, config)
}
