// Package optim drives weight updates of an nn.Network.
//
// The network implements the momentum rule itself; this package binds a
// network to its hyperparameters so training code can step it with output
// errors alone:
//
//	opt, err := optim.NewMomentum(net, optim.Config{LR: 0.05, Momentum: 0.2})
//
//	for _, s := range samples {
//	    out, _ := net.Run(s.Input)
//	    errs, _ := nn.OutputError(s.Expected, out)
//	    if err := opt.Step(errs); err != nil {
//	        return err
//	    }
//	}
package optim

// Optimizer is the interface training loops use to update a network.
type Optimizer interface {
	// Step backpropagates output errors (expected minus actual) from the
	// last forward pass and updates the weights in place.
	Step(outputErrors []float64) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config holds the hyperparameters of the momentum rule.
type Config struct {
	LR       float64 `yaml:"learning_rate"` // Learning rate (default: 0.05, must be > 0)
	Momentum float64 `yaml:"momentum"`      // Momentum factor (range: [0, 1))
}

// DefaultConfig returns the learning rate and momentum the ring
// classifier is trained with.
func DefaultConfig() Config {
	return Config{
		LR:       0.05,
		Momentum: 0.2,
	}
}
