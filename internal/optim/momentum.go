package optim

import (
	"github.com/born-ml/mlp/internal/nn"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned for out-of-range hyperparameters.
var ErrInvalidConfig = errors.New("invalid optimizer config")

// Validate checks LR > 0 and 0 <= Momentum < 1.
func (c Config) Validate() error {
	if !(c.LR > 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning rate must be positive, got %v", c.LR)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return errors.Wrapf(ErrInvalidConfig, "momentum must be in [0, 1), got %v", c.Momentum)
	}
	return nil
}

// Momentum applies gradient descent with momentum to one network.
//
// Update rule, per weight:
//
//	delta = momentum * previousDelta + lr * derivative * error * input
//	weight += delta
//
// The previous delta lives in each neuron's momentum buffer, so a network
// can be handed between optimizers without losing its velocity.
type Momentum struct {
	net      *nn.Network
	lr       float64
	momentum float64
}

// NewMomentum binds a momentum optimizer to net.
//
// A zero LR is replaced by the default learning rate.
func NewMomentum(net *nn.Network, config Config) (*Momentum, error) {
	if config.LR == 0 {
		config.LR = DefaultConfig().LR
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Momentum{
		net:      net,
		lr:       config.LR,
		momentum: config.Momentum,
	}, nil
}

// Step runs one backward pass with the current hyperparameters.
func (m *Momentum) Step(outputErrors []float64) error {
	return m.net.Learn(outputErrors, m.lr, m.momentum)
}

// GetLR returns the current learning rate.
func (m *Momentum) GetLR() float64 {
	return m.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (m *Momentum) SetLR(lr float64) error {
	if err := (Config{LR: lr, Momentum: m.momentum}).Validate(); err != nil {
		return err
	}
	m.lr = lr
	return nil
}

// GetMomentum returns the momentum factor.
func (m *Momentum) GetMomentum() float64 {
	return m.momentum
}

// Network returns the network being optimized.
func (m *Momentum) Network() *nn.Network {
	return m.net
}
