package nn

import (
	"gonum.org/v1/gonum/floats"
)

// Neuron is a single unit of a layer.
//
// weights[0] is the bias (multiplied by an implicit input of 1) and
// weights[i] multiplies the i-th value of the previous layer, 1-based.
// momentum has the same layout and holds the delta last applied to each
// weight.
type Neuron struct {
	kind       Kind
	weights    []float64
	momentum   []float64
	output     float64
	derivative float64
}

// newNeuron takes ownership of weights and starts with zero momentum.
func newNeuron(kind Kind, weights []float64) *Neuron {
	return &Neuron{
		kind:     kind,
		weights:  weights,
		momentum: make([]float64, len(weights)),
	}
}

// Forward computes the activation of the weighted sum of inputs and keeps
// the output and derivative for the backward pass.
//
// inputs must hold exactly len(weights)-1 values; Layer.Run checks this.
func (n *Neuron) Forward(inputs []float64) (float64, error) {
	sum := n.weights[0] + floats.Dot(n.weights[1:], inputs)
	if err := checkFinite("neuron forward", sum); err != nil {
		return 0, err
	}

	n.output, n.derivative = activate(n.kind, sum)
	return n.output, nil
}

// Update applies the momentum rule to every weight:
//
//	delta[0] = momentum*prev[0] + signal
//	delta[i] = momentum*prev[i] + signal*inputs[i-1]
//	weight += delta; prev = delta
func (n *Neuron) Update(signal, momentum float64, inputs []float64) error {
	n.momentum[0] = momentum*n.momentum[0] + signal
	n.weights[0] += n.momentum[0]

	prev := n.momentum[1:]
	floats.Scale(momentum, prev)
	floats.AddScaled(prev, signal, inputs)
	floats.Add(n.weights[1:], prev)

	return checkFinite("neuron update", n.weights...)
}

// WeightAt returns the weight connecting the neuron to unit i of the
// previous layer.
func (n *Neuron) WeightAt(i int) float64 {
	return n.weights[i+1]
}

// Kind returns the activation variant.
func (n *Neuron) Kind() Kind {
	return n.kind
}

// Weights returns a copy of the weight vector, bias first.
func (n *Neuron) Weights() []float64 {
	return append([]float64(nil), n.weights...)
}

// Momentum returns a copy of the momentum buffer.
func (n *Neuron) Momentum() []float64 {
	return append([]float64(nil), n.momentum...)
}

// Output returns the activation computed by the last Forward.
func (n *Neuron) Output() float64 {
	return n.output
}

// Derivative returns the derivative stored by the last Forward.
func (n *Neuron) Derivative() float64 {
	return n.derivative
}

func (n *Neuron) clone() *Neuron {
	c := *n
	c.weights = n.Weights()
	c.momentum = n.Momentum()
	return &c
}
