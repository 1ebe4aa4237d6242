// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizer used to train nn networks.
//
// # Overview
//
// This package contains:
//   - Momentum: gradient descent with a per-weight momentum buffer
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/nn"
//	    "github.com/born-ml/mlp/optim"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{2, 6, 2}, nn.NewUniformSource(1))
//	    optimizer, _ := optim.NewMomentum(net, optim.DefaultConfig())
//
//	    for _, s := range samples {
//	        out, _ := net.Run(s.Input)
//	        errs, _ := nn.OutputError(s.Expected, out)
//	        if err := optimizer.Step(errs); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Hyperparameters
//
// LR must be positive and Momentum must lie in [0, 1). NewMomentum and
// Momentum.SetLR return ErrInvalidConfig otherwise.
package optim
