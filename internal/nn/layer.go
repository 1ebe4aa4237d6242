package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Layer is a fixed-width group of neurons of one kind that all read the
// same input vector.
//
// Example:
//
//	layer, err := nn.NewLayer(nn.Hidden, 2, 6, rnd) // 2 inputs, 6 neurons
//	out, err := layer.Run([]float64{0.1, 0.4})
type Layer struct {
	kind       Kind
	inFeatures int
	neurons    []*Neuron
}

// NewLayer creates a layer of width neurons, each with 1+inFeatures
// weights drawn from rnd (bias first, neuron by neuron).
//
// Returns ErrDimensionMismatch if inFeatures or width is not positive.
func NewLayer(kind Kind, inFeatures, width int, rnd RandomSource) (*Layer, error) {
	if inFeatures <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "layer %d -> %d: widths must be positive", inFeatures, width)
	}

	neurons := make([]*Neuron, width)
	for i := range neurons {
		weights := make([]float64, 1+inFeatures)
		for j := range weights {
			weights[j] = rnd()
		}
		neurons[i] = newNeuron(kind, weights)
	}

	return &Layer{
		kind:       kind,
		inFeatures: inFeatures,
		neurons:    neurons,
	}, nil
}

// Run feeds input to every neuron and returns their outputs in order.
func (l *Layer) Run(input []float64) ([]float64, error) {
	if len(input) != l.inFeatures {
		return nil, mismatch("layer run", len(input), l.inFeatures)
	}

	output := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		v, err := n.Forward(input)
		if err != nil {
			return nil, err
		}
		output[i] = v
	}
	return output, nil
}

// PropagateErrorGradient returns, for each of the prevWidth units of the
// previous layer, the sum over this layer of weight * derivative * error.
//
// It reads the weights and derivatives left by the last forward pass, so
// it must be called before ApplyUpdate in the same training step.
func (l *Layer) PropagateErrorGradient(errs []float64, prevWidth int) ([]float64, error) {
	if len(errs) != len(l.neurons) {
		return nil, mismatch("layer error gradient", len(errs), len(l.neurons))
	}
	if prevWidth != l.inFeatures {
		return nil, mismatch("layer error gradient: previous width", prevWidth, l.inFeatures)
	}

	gradient := make([]float64, prevWidth)
	for i := range gradient {
		var sum float64
		for n, neuron := range l.neurons {
			sum += neuron.WeightAt(i) * neuron.derivative * errs[n]
		}
		if err := checkFinite("layer error gradient", sum); err != nil {
			return nil, err
		}
		gradient[i] = sum
	}
	return gradient, nil
}

// ApplyUpdate updates every neuron with the learning signal
// lr * derivative * error, using prevOutputs as the neuron inputs.
func (l *Layer) ApplyUpdate(errs, prevOutputs []float64, lr, momentum float64) error {
	if len(errs) != len(l.neurons) {
		return mismatch("layer update: errors", len(errs), len(l.neurons))
	}
	if len(prevOutputs) != l.inFeatures {
		return mismatch("layer update: previous outputs", len(prevOutputs), l.inFeatures)
	}

	for n, neuron := range l.neurons {
		if err := neuron.Update(lr*neuron.derivative*errs[n], momentum, prevOutputs); err != nil {
			return err
		}
	}
	return nil
}

// Outputs returns the outputs of the last forward pass.
func (l *Layer) Outputs() []float64 {
	out := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.output
	}
	return out
}

// Width returns the number of neurons.
func (l *Layer) Width() int {
	return len(l.neurons)
}

// InFeatures returns the width of the previous layer.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// Kind returns the activation variant shared by all neurons.
func (l *Layer) Kind() Kind {
	return l.kind
}

// Neuron returns the neuron at index i.
//
// Panics if i is out of bounds.
func (l *Layer) Neuron(i int) *Neuron {
	if i < 0 || i >= len(l.neurons) {
		panic("Layer.Neuron: index out of bounds")
	}
	return l.neurons[i]
}

// WeightMatrix returns a copy of the weights as a Width x (1+InFeatures)
// matrix, one row per neuron, bias in column 0.
func (l *Layer) WeightMatrix() *mat.Dense {
	cols := 1 + l.inFeatures
	data := make([]float64, 0, len(l.neurons)*cols)
	for _, n := range l.neurons {
		data = append(data, n.weights...)
	}
	return mat.NewDense(len(l.neurons), cols, data)
}

func (l *Layer) clone() *Layer {
	neurons := make([]*Neuron, len(l.neurons))
	for i, n := range l.neurons {
		neurons[i] = n.clone()
	}
	return &Layer{
		kind:       l.kind,
		inFeatures: l.inFeatures,
		neurons:    neurons,
	}
}
