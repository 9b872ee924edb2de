package net

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/drakos74/backprop/internal/math/algebra"
)

type options struct {
	id  string
	src rand.Source
}

// Option adjusts the construction of a network.
type Option func(o *options)

// WithSource sets the random source used to seed the weights.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithID sets the id of the network, instead of generating a new one.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// Network is a fixed topology feed forward network trained one sample at a time.
type Network struct {
	id         string
	parameters Parameters
	layers     []Layer
	rate       float64
}

// New creates a new network for the given parameters,
// with every weight seeded uniformly in [0,1).
func New(parameters Parameters, opts ...Option) (*Network, error) {
	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("could not create network: %w", err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.id == "" {
		o.id = uuid.New().String()
	}
	if o.src == nil {
		o.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	size := parameters.Layers()
	n := &Network{
		id:         o.id,
		parameters: parameters.clone(),
		layers:     make([]Layer, size),
		rate:       parameters.LearningRate,
	}

	for i := 0; i < size; i++ {
		previous, next := i-1, i+1
		if i == 0 {
			previous = none
		}
		if i == size-1 {
			next = none
		}
		layer, err := newLayer(i, parameters.Nodes[i], previous, next)
		if err != nil {
			return nil, fmt.Errorf("could not create network: %w", err)
		}
		n.layers[i] = layer
	}

	dist := distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: o.src,
	}
	for i := range n.layers {
		n.layers[i].seed(n.layers, dist)
	}

	log.Debug().
		Str("id", n.id).
		Ints("nodes", n.parameters.Nodes).
		Float64("rate", n.rate).
		Msg("created network")

	return n, nil
}

// ID returns the unique id of the network.
func (n *Network) ID() string {
	return n.id
}

// Parameters returns the parameters the network was built with.
func (n *Network) Parameters() Parameters {
	return n.parameters.clone()
}

// LearningRate returns the learning rate shared by all layers.
func (n *Network) LearningRate() float64 {
	return n.rate
}

// Size returns the number of layers, input and output included.
func (n *Network) Size() int {
	return len(n.layers)
}

// Layer returns the layer at the given index.
func (n *Network) Layer(i int) *Layer {
	return &n.layers[i]
}

func (n *Network) last() *Layer {
	return &n.layers[len(n.layers)-1]
}

// Input is the input buffer of the input layer.
func (n *Network) Input() []float64 {
	return n.layers[0].input
}

// Output is the activation of the real nodes of the output layer.
func (n *Network) Output() []float64 {
	last := n.last()
	return last.activations[:last.nodes]
}

// Error is the delta of the output layer.
func (n *Network) Error() []float64 {
	return n.last().delta
}

// Forward feeds the given input through every layer, from input to output.
func (n *Network) Forward(input []float64) error {
	if len(input) != n.layers[0].nodes {
		return fmt.Errorf("input of size %d for %d nodes: %w", len(input), n.layers[0].nodes, algebra.DimensionErr)
	}
	copy(n.layers[0].input, input)
	for i := range n.layers {
		if err := n.layers[i].forward(n.layers); err != nil {
			return fmt.Errorf("could not feed forward: %w", err)
		}
	}
	return nil
}

// Backward seeds the output delta with the difference of output and label,
// and propagates it from the output layer down to the first hidden layer.
func (n *Network) Backward(label []float64) error {
	last := n.last()
	if len(label) != last.nodes {
		return fmt.Errorf("label of size %d for %d nodes: %w", len(label), last.nodes, algebra.DimensionErr)
	}
	for i := 0; i < last.nodes; i++ {
		last.delta[i] = last.activations[i] - label[i]
	}
	log.Trace().
		Floats64("error", last.delta).
		Msg("output")
	for i := len(n.layers) - 1; i > 0; i-- {
		if err := n.layers[i].backward(n.layers); err != nil {
			return fmt.Errorf("could not propagate backwards: %w", err)
		}
	}
	return nil
}

// UpdateWeights applies the gradient descent step on every layer.
// It relies on the activations of the last Forward and the deltas of the last Backward call.
func (n *Network) UpdateWeights() error {
	for i := range n.layers {
		if err := n.layers[i].updateWeights(n.layers, n.rate); err != nil {
			return fmt.Errorf("could not update weights: %w", err)
		}
	}
	return nil
}

// Iterate runs one online training step for the given sample.
func (n *Network) Iterate(input, label []float64) error {
	if err := n.Forward(input); err != nil {
		return err
	}
	if err := n.Backward(label); err != nil {
		return err
	}
	return n.UpdateWeights()
}

// Predict feeds the input forward and returns a copy of the output.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if err := n.Forward(input); err != nil {
		return nil, err
	}
	return append([]float64{}, n.Output()...), nil
}

func (n *Network) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("network %s rate = %v\n", n.id, n.rate))
	for i := range n.layers {
		builder.WriteString(n.layers[i].String())
		builder.WriteString("\n")
	}
	return builder.String()
}
