// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"testing"

	"github.com/born-ml/mlp/nn"
	"github.com/born-ml/mlp/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_NewMomentum(t *testing.T) {
	net, err := nn.New([]int{2, 3, 1}, nn.NewUniformSource(4))
	require.NoError(t, err)

	var opt optim.Optimizer
	opt, err = optim.NewMomentum(net, optim.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.05, opt.GetLR())

	_, err = net.Run([]float64{0.5, 0.5})
	require.NoError(t, err)
	require.NoError(t, opt.Step([]float64{0.3}))
}

func TestFacade_InvalidConfig(t *testing.T) {
	net, err := nn.New([]int{1, 1}, nn.NewUniformSource(4))
	require.NoError(t, err)

	_, err = optim.NewMomentum(net, optim.Config{LR: 0.1, Momentum: 1})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)
}
