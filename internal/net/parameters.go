package net

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxLayerNodes is the maximum number of real nodes in any layer.
	MaxLayerNodes = 10
	// MinHiddenLayers is the minimum number of hidden layers.
	MinHiddenLayers = 1
	// MaxHiddenLayers is the maximum number of hidden layers.
	MaxHiddenLayers = 10
	// MaxLayers is the maximum number of layers including input and output.
	MaxLayers = MaxHiddenLayers + 2
)

// ConfigurationErr is returned when the network topology or learning rate is invalid.
var ConfigurationErr = errors.New("invalid configuration")

// Parameters defines the topology and learning rate of a network.
type Parameters struct {
	HiddenLayers int     `json:"hidden_layers"`
	Nodes        []int   `json:"nodes"`
	LearningRate float64 `json:"learning_rate"`
}

// NewParameters creates validated parameters.
// nodes holds the size of every layer, input and output included.
func NewParameters(hiddenLayers int, nodes []int, learningRate float64) (Parameters, error) {
	p := Parameters{
		HiddenLayers: hiddenLayers,
		Nodes:        nodes,
		LearningRate: learningRate,
	}.clone()
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate checks the parameters against the static limits of the network.
func (p Parameters) Validate() error {
	if p.HiddenLayers < MinHiddenLayers || p.HiddenLayers > MaxHiddenLayers {
		return fmt.Errorf("hidden layers %d out of [%d,%d]: %w",
			p.HiddenLayers, MinHiddenLayers, MaxHiddenLayers, ConfigurationErr)
	}
	if p.Nodes == nil {
		return fmt.Errorf("missing nodes: %w", ConfigurationErr)
	}
	if len(p.Nodes) != p.Layers() {
		return fmt.Errorf("nodes for %d layers but expected %d: %w",
			len(p.Nodes), p.Layers(), ConfigurationErr)
	}
	for i, n := range p.Nodes {
		if n < 1 || n > MaxLayerNodes {
			return fmt.Errorf("nodes[%d] = %d out of [1,%d]: %w", i, n, MaxLayerNodes, ConfigurationErr)
		}
	}
	if math.IsNaN(p.LearningRate) || math.IsInf(p.LearningRate, 0) {
		return fmt.Errorf("learning rate %v: %w", p.LearningRate, ConfigurationErr)
	}
	return nil
}

// Layers returns the total number of layers, input and output included.
func (p Parameters) Layers() int {
	return p.HiddenLayers + 2
}

func (p Parameters) clone() Parameters {
	var nodes []int
	if p.Nodes != nil {
		nodes = append([]int{}, p.Nodes...)
	}
	return Parameters{
		HiddenLayers: p.HiddenLayers,
		Nodes:        nodes,
		LearningRate: p.LearningRate,
	}
}
