package net

import "math"

// Activation is the closed set of activation functions a layer can carry.
type Activation int

const (
	// Identity passes the input through, it is used by the input layer.
	Identity Activation = iota
	// Sigmoid squashes the input into (0,1), it is used by every other layer.
	Sigmoid
)

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func sigmoidDerivative(x float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}

// F applies the activation function.
func (a Activation) F(x float64) float64 {
	switch a {
	case Sigmoid:
		return sigmoid(x)
	default:
		return x
	}
}

// D applies the derivative of the activation function.
func (a Activation) D(x float64) float64 {
	switch a {
	case Sigmoid:
		return sigmoidDerivative(x)
	default:
		return 1
	}
}

func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	default:
		return "identity"
	}
}
