// Package nn implements a small multilayer perceptron trained by
// backpropagation with momentum.
//
// A Network is built from a topology such as [2 6 2]: the first entry is
// the input width, the last the output width and the entries in between
// the hidden layer widths. Hidden layers use leaky-ReLU, the output layer
// the logistic sigmoid.
//
// Training is a strict run-then-learn cycle:
//
//	out, err := net.Run(input)
//	errs, err := nn.OutputError(expected, out)
//	err = net.Learn(errs, 0.05, 0.2)
//
// A Network is not safe for concurrent use. Replicate it with Clone to
// evaluate on several goroutines.
package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Network is an ordered sequence of layers plus a copy of the most recent
// input, which the first layer needs when its weights are updated.
type Network struct {
	topology []int
	layers   []*Layer
	input    []float64
}

// New creates a network for topology, drawing every initial weight from rnd.
//
// Returns ErrDimensionMismatch if topology has fewer than two entries or
// any entry is not positive.
func New(topology []int, rnd RandomSource) (*Network, error) {
	if len(topology) < 2 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "topology %v: need at least an input and an output width", topology)
	}
	for i, width := range topology {
		if width <= 0 {
			return nil, errors.Wrapf(ErrDimensionMismatch, "topology %v: width %d at index %d", topology, width, i)
		}
	}

	layers := make([]*Layer, len(topology)-1)
	for i := range layers {
		kind := Hidden
		if i == len(layers)-1 {
			kind = Output
		}
		layer, err := NewLayer(kind, topology[i], topology[i+1], rnd)
		if err != nil {
			return nil, err
		}
		layers[i] = layer
	}

	return &Network{
		topology: append([]int(nil), topology...),
		layers:   layers,
	}, nil
}

// Run feeds input through every layer in order and returns the output
// layer's values. A copy of input is cached for Learn once every layer
// has run; a failed Run leaves the previous cache in place.
func (net *Network) Run(input []float64) ([]float64, error) {
	if len(input) != net.InputWidth() {
		return nil, mismatch("network run", len(input), net.InputWidth())
	}

	output := input
	for i, layer := range net.layers {
		var err error
		output, err = layer.Run(output)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
	}

	net.input = append(net.input[:0], input...)
	return output, nil
}

// Learn backpropagates outputErrors (expected minus actual, one value per
// output unit) and updates every weight in place.
//
// Layers are visited from last to first. Each layer's error gradient for
// the layer behind it is computed before its own weights change. The first
// layer is updated against the input cached by the last Run.
func (net *Network) Learn(outputErrors []float64, lr, momentum float64) error {
	if len(outputErrors) != net.OutputWidth() {
		return mismatch("network learn", len(outputErrors), net.OutputWidth())
	}
	if net.input == nil {
		return errors.Wrap(ErrDimensionMismatch, "network learn: no input cached, call Run first")
	}

	errs := outputErrors
	for i := len(net.layers) - 1; i > 0; i-- {
		layer, behind := net.layers[i], net.layers[i-1]

		gradient, err := layer.PropagateErrorGradient(errs, behind.Width())
		if err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		if err := layer.ApplyUpdate(errs, behind.Outputs(), lr, momentum); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		errs = gradient
	}

	if err := net.layers[0].ApplyUpdate(errs, net.input, lr, momentum); err != nil {
		return errors.Wrap(err, "layer 0")
	}
	return nil
}

// Topology returns a copy of the layer widths, input width first.
func (net *Network) Topology() []int {
	return append([]int(nil), net.topology...)
}

// InputWidth returns the number of values Run expects.
func (net *Network) InputWidth() int {
	return net.topology[0]
}

// OutputWidth returns the number of values Run returns.
func (net *Network) OutputWidth() int {
	return net.topology[len(net.topology)-1]
}

// Len returns the number of weight layers (len(topology) - 1).
func (net *Network) Len() int {
	return len(net.layers)
}

// Layer returns the layer at index i; layer 0 reads the network input.
//
// Panics if i is out of bounds.
func (net *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(net.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return net.layers[i]
}

// Clone returns a deep copy sharing no state with net.
func (net *Network) Clone() *Network {
	layers := make([]*Layer, len(net.layers))
	for i, l := range net.layers {
		layers[i] = l.clone()
	}

	var input []float64
	if net.input != nil {
		input = append([]float64(nil), net.input...)
	}

	return &Network{
		topology: net.Topology(),
		layers:   layers,
		input:    input,
	}
}

// StateDict returns copies of every weight and momentum vector keyed by
// "<layer>.<neuron>.weight" and "<layer>.<neuron>.momentum".
func (net *Network) StateDict() map[string][]float64 {
	stateDict := make(map[string][]float64)
	for i, layer := range net.layers {
		for j, n := range layer.neurons {
			stateDict[stateKey(i, j, "weight")] = n.Weights()
			stateDict[stateKey(i, j, "momentum")] = n.Momentum()
		}
	}
	return stateDict
}

// LoadStateDict copies weight and momentum vectors into the network.
//
// Keys that are absent leave the corresponding vector unchanged. Unknown
// keys and vectors of the wrong length are rejected before anything is
// written.
func (net *Network) LoadStateDict(stateDict map[string][]float64) error {
	targets := make(map[string][]float64, len(stateDict))
	for key, values := range stateDict {
		dst, err := net.stateVector(key)
		if err != nil {
			return err
		}
		if len(values) != len(dst) {
			return errors.Wrapf(mismatch("load state", len(values), len(dst)), "key %q", key)
		}
		targets[key] = dst
	}

	for key, dst := range targets {
		copy(dst, stateDict[key])
	}
	return nil
}

// stateVector resolves a state key to the backing slice it names.
func (net *Network) stateVector(key string) ([]float64, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return nil, errors.Errorf("load state: malformed key %q", key)
	}

	li, err := strconv.Atoi(parts[0])
	if err != nil || li < 0 || li >= len(net.layers) {
		return nil, errors.Errorf("load state: no layer for key %q", key)
	}
	layer := net.layers[li]

	ni, err := strconv.Atoi(parts[1])
	if err != nil || ni < 0 || ni >= len(layer.neurons) {
		return nil, errors.Errorf("load state: no neuron for key %q", key)
	}
	n := layer.neurons[ni]

	switch parts[2] {
	case "weight":
		return n.weights, nil
	case "momentum":
		return n.momentum, nil
	default:
		return nil, errors.Errorf("load state: unknown vector in key %q", key)
	}
}

func stateKey(layer, neuron int, name string) string {
	return fmt.Sprintf("%d.%d.%s", layer, neuron, name)
}
