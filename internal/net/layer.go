package net

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/drakos74/backprop/internal/math/algebra"
)

// none marks a missing neighbour in the layer chain.
const none = -1

// Layer is a set of nodes with an implicit bias unit.
// Neighbours are referenced by their index in the owning network's chain.
type Layer struct {
	index    int
	previous int
	next     int
	nodes    int
	fn       Activation
	// input holds the pre-activation value of every real node
	input []float64
	// activations and derivatives carry one extra slot for the bias unit
	activations []float64
	derivatives []float64
	delta       []float64
	// weights maps this layer's activations, bias row included, onto the next layer's input
	weights *mat.Dense
	update  *mat.Dense
}

func newLayer(index, nodes, previous, next int) (Layer, error) {
	if nodes < 1 || nodes > MaxLayerNodes {
		return Layer{}, fmt.Errorf("layer %d with %d nodes out of [1,%d]: %w", index, nodes, MaxLayerNodes, ConfigurationErr)
	}
	fn := Sigmoid
	if previous == none {
		fn = Identity
	}
	return Layer{
		index:       index,
		previous:    previous,
		next:        next,
		nodes:       nodes,
		fn:          fn,
		input:       make([]float64, nodes),
		activations: make([]float64, nodes+1),
		derivatives: make([]float64, nodes+1),
		delta:       make([]float64, nodes),
	}, nil
}

// seed allocates the weight matrix and fills it with uniform values in [0,1).
// The output layer gets a single column that takes no part in the forward pass.
func (l *Layer) seed(chain []Layer, dist distuv.Uniform) {
	cols := 1
	if l.next != none {
		cols = chain[l.next].nodes
		l.update = mat.NewDense(l.nodes+1, cols, nil)
	}
	values := make([]float64, (l.nodes+1)*cols)
	for i := range values {
		values[i] = dist.Rand()
	}
	l.weights = mat.NewDense(l.nodes+1, cols, values)
}

// forward activates the layer input and feeds the next layer.
func (l *Layer) forward(chain []Layer) error {
	for i := 0; i < l.nodes; i++ {
		l.activations[i] = l.fn.F(l.input[i])
		l.derivatives[i] = l.fn.D(l.input[i])
	}
	l.activations[l.nodes] = 1
	log.Trace().
		Int("layer", l.index).
		Floats64("input", l.input).
		Floats64("activation", l.activations).
		Msg("forward")
	if l.next == none {
		return nil
	}
	next := &chain[l.next]
	if err := algebra.VecMatMul(next.input, l.activations, l.weights); err != nil {
		return fmt.Errorf("could not feed layer %d: %w", next.index, err)
	}
	return nil
}

// backward propagates the delta of the layer to the previous one.
// The bias row of the previous weights is left out, the bias unit has no upstream node.
func (l *Layer) backward(chain []Layer) error {
	if l.previous == none {
		return nil
	}
	previous := &chain[l.previous]
	weights := previous.weights.Slice(0, previous.nodes, 0, l.nodes)
	if err := algebra.MatVecMul(previous.delta, weights, l.delta); err != nil {
		return fmt.Errorf("could not propagate delta to layer %d: %w", previous.index, err)
	}
	for k := 0; k < previous.nodes; k++ {
		previous.delta[k] *= previous.derivatives[k]
	}
	log.Trace().
		Int("layer", previous.index).
		Floats64("delta", previous.delta).
		Msg("backward")
	return nil
}

// updateWeights applies one gradient descent step with the given learning rate,
// based on the current activations and the delta of the next layer.
func (l *Layer) updateWeights(chain []Layer, rate float64) error {
	if l.next == none {
		return nil
	}
	next := &chain[l.next]
	if err := algebra.MatMatMul(l.update, algebra.Column(l.activations), algebra.Row(next.delta)); err != nil {
		return fmt.Errorf("could not compute update for layer %d: %w", l.index, err)
	}
	if err := algebra.MatAccumulate(l.weights, l.update, -rate); err != nil {
		return fmt.Errorf("could not update weights for layer %d: %w", l.index, err)
	}
	return nil
}

// SetWeights overwrites the weights of the layer with the given row-major values.
func (l *Layer) SetWeights(values []float64) error {
	r, c := l.weights.Dims()
	if len(values) != r*c {
		return fmt.Errorf("weights for layer %d: expected %d values but got %d: %w",
			l.index, r*c, len(values), algebra.DimensionErr)
	}
	copy(l.weights.RawMatrix().Data, values)
	return nil
}

// Nodes returns the number of real nodes of the layer.
func (l *Layer) Nodes() int {
	return l.nodes
}

// Activation returns the activation function of the layer.
func (l *Layer) Activation() Activation {
	return l.fn
}

// Input returns the pre-activation values of the layer.
func (l *Layer) Input() []float64 {
	return l.input
}

// Activations returns the activations of the layer, the trailing bias unit included.
func (l *Layer) Activations() []float64 {
	return l.activations
}

// Delta returns the error signal of the real nodes of the layer.
func (l *Layer) Delta() []float64 {
	return l.delta
}

// Weights returns the weight matrix of the layer.
func (l *Layer) Weights() mat.Matrix {
	return l.weights
}

func (l *Layer) values() []float64 {
	return append([]float64{}, l.weights.RawMatrix().Data...)
}

func (l *Layer) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("layer %d [%s] nodes = %d\n", l.index, l.fn, l.nodes))
	builder.WriteString(fmt.Sprintf("input = %s\n", algebra.FormatVector(l.input)))
	builder.WriteString(fmt.Sprintf("activation = %s\n", algebra.FormatVector(l.activations)))
	builder.WriteString(fmt.Sprintf("delta = %s\n", algebra.FormatVector(l.delta)))
	builder.WriteString("weights =\n")
	builder.WriteString(algebra.FormatMatrix(l.weights))
	return builder.String()
}
