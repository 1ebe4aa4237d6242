package train

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PrintNetwork writes every layer's weight matrix, one row per neuron with
// the bias in the first column.
func PrintNetwork(w io.Writer, net *nn.Network) {
	fmt.Fprintf(w, "Network %v\n", net.Topology())
	for i := 0; i < net.Len(); i++ {
		layer := net.Layer(i)
		fmt.Fprintf(w, "Layer %d (%s, %d x %d):\n", i, layer.Kind(), layer.Width(), 1+layer.InFeatures())
		fmt.Fprintf(w, "%.4f\n", mat.Formatted(layer.WeightMatrix(), mat.Prefix("  "), mat.Squeeze()))
	}
}

// PrintPredictions runs each sample through net and writes its input,
// output, expected output and squared error. It returns the mean squared
// error over samples.
func PrintPredictions(w io.Writer, net *nn.Network, samples []dataset.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	var total float64
	for i, s := range samples {
		out, err := net.Run(s.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		e, err := nn.OutputError(s.Expected, out)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		sq := nn.SquaredError(e)
		total += sq

		fmt.Fprintf(w, "in:%s out:%s expected:%s err:%.1f\n",
			formatVector(s.Input, 2, 4), formatVector(out, 2, 0), formatVector(s.Expected, 0, 0), sq)
	}
	return total / float64(len(samples)), nil
}

// PrintSummary writes the headline result of a run. testErr is the mean
// squared error over the held-out samples, printed unscaled.
func PrintSummary(w io.Writer, history *History, testErr float64) {
	fmt.Fprintln(w, strings.Repeat(".", 40))
	if history != nil && len(history.MSE) > 0 {
		fmt.Fprintf(w, "Held-out MSE: %.4f -> %.4f\n", history.Initial(), history.Final())
	}
	fmt.Fprintf(w, "Total test error: %.4f %%\n", testErr)
	fmt.Fprintln(w, strings.Repeat(".", 40))
}

// formatVector prints v with prec decimals, eliding entries past limit
// (0 = no limit).
func formatVector(v []float64, prec, limit int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if limit > 0 && i == limit {
			fmt.Fprintf(&b, " ...%d more", len(v)-limit)
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.*f", prec, x)
	}
	b.WriteByte(']')
	return b.String()
}
