package optim_test

import (
	"testing"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constSource(v float64) nn.RandomSource {
	return func() float64 { return v }
}

// singleNeuron returns a [1 1] network with bias 0 and weight 1.
func singleNeuron(t *testing.T) *nn.Network {
	t.Helper()

	net, err := nn.New([]int{1, 1}, constSource(0))
	require.NoError(t, err)
	require.NoError(t, net.LoadStateDict(map[string][]float64{"0.0.weight": {0, 1}}))
	return net
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  optim.Config
		wantErr bool
	}{
		{"default", optim.DefaultConfig(), false},
		{"no momentum", optim.Config{LR: 0.1}, false},
		{"zero lr", optim.Config{LR: 0}, true},
		{"negative lr", optim.Config{LR: -0.1}, true},
		{"momentum one", optim.Config{LR: 0.1, Momentum: 1}, true},
		{"negative momentum", optim.Config{LR: 0.1, Momentum: -0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, optim.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewMomentum_Defaults(t *testing.T) {
	opt, err := optim.NewMomentum(singleNeuron(t), optim.Config{Momentum: 0.5})
	require.NoError(t, err)

	assert.Equal(t, 0.05, opt.GetLR())
	assert.Equal(t, 0.5, opt.GetMomentum())

	_, err = optim.NewMomentum(singleNeuron(t), optim.Config{LR: 0.1, Momentum: 2})
	require.ErrorIs(t, err, optim.ErrInvalidConfig)
}

// TestMomentum_Step tests that two identical steps accumulate velocity.
func TestMomentum_Step(t *testing.T) {
	net := singleNeuron(t)
	opt, err := optim.NewMomentum(net, optim.Config{LR: 0.1, Momentum: 0.9})
	require.NoError(t, err)

	_, err = net.Run([]float64{1})
	require.NoError(t, err)
	require.NoError(t, opt.Step([]float64{1}))

	// delta_1 = 0.1 * 1 * 1 = 0.1
	assert.InDeltaSlice(t, []float64{0.1, 1.1}, net.Layer(0).Neuron(0).Weights(), 1e-12)

	_, err = net.Run([]float64{1})
	require.NoError(t, err)
	require.NoError(t, opt.Step([]float64{1}))

	// delta_2 = 0.9 * 0.1 + 0.1 = 0.19
	assert.InDeltaSlice(t, []float64{0.29, 1.29}, net.Layer(0).Neuron(0).Weights(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.19, 0.19}, net.Layer(0).Neuron(0).Momentum(), 1e-12)
}

func TestMomentum_StepDimensionMismatch(t *testing.T) {
	net := singleNeuron(t)
	opt, err := optim.NewMomentum(net, optim.DefaultConfig())
	require.NoError(t, err)

	_, err = net.Run([]float64{1})
	require.NoError(t, err)

	require.ErrorIs(t, opt.Step([]float64{1, 2}), nn.ErrDimensionMismatch)
}

func TestMomentum_SetLR(t *testing.T) {
	net := singleNeuron(t)
	opt, err := optim.NewMomentum(net, optim.Config{LR: 0.01})
	require.NoError(t, err)

	require.NoError(t, opt.SetLR(0.2))
	assert.Equal(t, 0.2, opt.GetLR())

	require.ErrorIs(t, opt.SetLR(0), optim.ErrInvalidConfig)
	assert.Equal(t, 0.2, opt.GetLR())
	assert.Same(t, net, opt.Network())
}

func TestMomentum_ImplementsOptimizer(t *testing.T) {
	opt, err := optim.NewMomentum(singleNeuron(t), optim.DefaultConfig())
	require.NoError(t, err)

	var _ optim.Optimizer = opt
}
