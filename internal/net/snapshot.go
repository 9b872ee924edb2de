package net

import "fmt"

// Snapshot holds everything needed to re-build a network in its current state.
type Snapshot struct {
	ID         string      `json:"id"`
	Parameters Parameters  `json:"parameters"`
	Weights    [][]float64 `json:"weights"`
}

// Snapshot captures the parameters and the weights of every layer.
func (n *Network) Snapshot() Snapshot {
	weights := make([][]float64, len(n.layers))
	for i := range n.layers {
		weights[i] = n.layers[i].values()
	}
	return Snapshot{
		ID:         n.id,
		Parameters: n.parameters.clone(),
		Weights:    weights,
	}
}

// Restore re-builds the network from the snapshot.
func Restore(s Snapshot, opts ...Option) (*Network, error) {
	n, err := New(s.Parameters, append(opts, WithID(s.ID))...)
	if err != nil {
		return nil, err
	}
	if len(s.Weights) != n.Size() {
		return nil, fmt.Errorf("weights for %d layers but network has %d: %w", len(s.Weights), n.Size(), ConfigurationErr)
	}
	for i, w := range s.Weights {
		if err := n.layers[i].SetWeights(w); err != nil {
			return nil, fmt.Errorf("could not restore network '%s': %w", s.ID, err)
		}
	}
	return n, nil
}
