package train

import (
	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/pkg/errors"
)

// Evaluate returns the mean over samples of the squared output error.
//
// Every worker runs its share of samples on its own clone of net, so net
// itself, including the input cached for Learn, is left untouched.
func Evaluate(net *nn.Network, samples []dataset.Sample, cfg parallel.Config) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	workers := cfg.Workers(len(samples))
	sums := make([]float64, workers)
	errs := make([]error, workers)

	parallel.For(len(samples), func(w, start, end int) {
		replica := net.Clone()
		for i := start; i < end; i++ {
			out, err := replica.Run(samples[i].Input)
			if err != nil {
				errs[w] = errors.Wrapf(err, "sample %d", i)
				return
			}
			e, err := nn.OutputError(samples[i].Expected, out)
			if err != nil {
				errs[w] = errors.Wrapf(err, "sample %d", i)
				return
			}
			sums[w] += nn.SquaredError(e)
		}
	}, cfg)

	var total float64
	for w := range sums {
		if errs[w] != nil {
			return 0, errs[w]
		}
		total += sums[w]
	}
	return total / float64(len(samples)), nil
}
