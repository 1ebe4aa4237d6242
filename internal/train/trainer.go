package train

import (
	"fmt"
	"io"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/pkg/errors"
)

// Trainer runs run-then-learn cycles over a network.
//
// Example:
//
//	trainer, err := train.NewTrainer(net, cfg, os.Stdout)
//	history, err := trainer.Fit(samples, dataset.Tail(samples, cfg.TestSamples))
type Trainer struct {
	net *nn.Network
	opt *optim.Momentum
	cfg Config
	par parallel.Config
	out io.Writer
}

// NewTrainer creates a trainer for net. Progress lines go to out; pass
// io.Discard to silence them.
func NewTrainer(net *nn.Network, cfg Config, out io.Writer) (*Trainer, error) {
	opt, err := optim.NewMomentum(net, cfg.Optimizer)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}

	return &Trainer{
		net: net,
		opt: opt,
		cfg: cfg,
		par: ParallelConfig(cfg.Workers),
		out: out,
	}, nil
}

// ParallelConfig returns the evaluation fan-out for a worker count
// (0 = one worker per CPU).
func ParallelConfig(workers int) parallel.Config {
	cfg := parallel.DefaultConfig()
	if workers > 0 {
		cfg.NumWorkers = workers
		cfg.Enabled = workers > 1
	}
	return cfg
}

// Network returns the network being trained.
func (t *Trainer) Network() *nn.Network {
	return t.net
}

// Step runs s through the network, backpropagates expected minus actual
// and returns the sample's squared error before the update.
func (t *Trainer) Step(s dataset.Sample) (float64, error) {
	out, err := t.net.Run(s.Input)
	if err != nil {
		return 0, errors.Wrap(err, "run")
	}
	errs, err := nn.OutputError(s.Expected, out)
	if err != nil {
		return 0, errors.Wrap(err, "output error")
	}
	if err := t.opt.Step(errs); err != nil {
		return 0, errors.Wrap(err, "learn")
	}
	return nn.SquaredError(errs), nil
}

// Fit trains on consecutive chunks of samples. Chunk i covers samples
// [i*ChunkSize, (i+1)*ChunkSize) and is passed over Repeats times before
// moving on. Chunks running past the end of samples are cut short.
//
// The held-out mean squared error is recorded once before training and
// again after every chunk.
func (t *Trainer) Fit(samples, heldOut []dataset.Sample) (*History, error) {
	history := &History{}

	mse, err := Evaluate(t.net, heldOut, t.par)
	if err != nil {
		return nil, errors.Wrap(err, "initial evaluation")
	}
	history.MSE = append(history.MSE, mse)

	for chunk := 0; chunk < t.cfg.Chunks; chunk++ {
		start := min(chunk*t.cfg.ChunkSize, len(samples))
		end := min(start+t.cfg.ChunkSize, len(samples))
		if start == end {
			break
		}

		var trainErr float64
		for r := 0; r < t.cfg.Repeats; r++ {
			for _, s := range samples[start:end] {
				e, err := t.Step(s)
				if err != nil {
					return history, errors.Wrapf(err, "chunk %d", chunk)
				}
				trainErr += e
			}
		}
		trainErr /= float64(t.cfg.Repeats * (end - start))
		history.TrainMSE = append(history.TrainMSE, trainErr)

		mse, err := Evaluate(t.net, heldOut, t.par)
		if err != nil {
			return history, errors.Wrapf(err, "evaluation after chunk %d", chunk)
		}
		history.MSE = append(history.MSE, mse)

		fmt.Fprintf(t.out, "Chunk %3d/%d: train MSE=%.4f, held-out MSE=%.4f\n",
			chunk+1, t.cfg.Chunks, trainErr, mse)
	}

	return history, nil
}

// History records training progress.
type History struct {
	// MSE holds the held-out error before training followed by the
	// held-out error after each chunk.
	MSE []float64

	// TrainMSE holds the mean squared error of the training steps of each
	// chunk, measured before each update.
	TrainMSE []float64
}

// Initial returns the held-out error of the untrained network.
func (h *History) Initial() float64 {
	if len(h.MSE) == 0 {
		return 0
	}
	return h.MSE[0]
}

// Final returns the last recorded held-out error.
func (h *History) Final() float64 {
	if len(h.MSE) == 0 {
		return 0
	}
	return h.MSE[len(h.MSE)-1]
}

// Improved reports whether training lowered the held-out error.
func (h *History) Improved() bool {
	return len(h.MSE) > 1 && h.Final() < h.Initial()
}
