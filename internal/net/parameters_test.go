package net

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParameters(t *testing.T) {

	type test struct {
		hidden int
		nodes  []int
		rate   float64
		err    bool
	}

	tests := map[string]test{
		"valid": {
			hidden: 2,
			nodes:  []int{3, 5, 3, 1},
			rate:   0.05,
		},
		"max-nodes": {
			hidden: 1,
			nodes:  []int{MaxLayerNodes, MaxLayerNodes, MaxLayerNodes},
			rate:   0.5,
		},
		"max-hidden": {
			hidden: MaxHiddenLayers,
			nodes:  []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			rate:   0.5,
		},
		"no-hidden": {
			hidden: 0,
			nodes:  []int{3, 1},
			err:    true,
		},
		"too-many-hidden": {
			hidden: MaxHiddenLayers + 1,
			nodes:  []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			err:    true,
		},
		"missing-nodes": {
			hidden: 1,
			err:    true,
		},
		"short-nodes": {
			hidden: 2,
			nodes:  []int{3, 5, 1},
			err:    true,
		},
		"zero-nodes": {
			hidden: 1,
			nodes:  []int{3, 0, 1},
			err:    true,
		},
		"too-many-nodes": {
			hidden: 1,
			nodes:  []int{3, MaxLayerNodes + 1, 1},
			err:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := NewParameters(tt.hidden, tt.nodes, tt.rate)
			if tt.err {
				assert.ErrorIs(t, err, ConfigurationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.nodes, p.Nodes)
			assert.Equal(t, tt.hidden+2, p.Layers())
			assert.Equal(t, tt.rate, p.LearningRate)
		})
	}
}

func TestParameters_Immutable(t *testing.T) {
	nodes := []int{3, 5, 3, 1}
	p, err := NewParameters(2, nodes, 0.05)
	require.NoError(t, err)

	nodes[1] = 9
	assert.Equal(t, []int{3, 5, 3, 1}, p.Nodes)
}

func TestActivation(t *testing.T) {
	assert.Equal(t, 3.5, Identity.F(3.5))
	assert.Equal(t, 1.0, Identity.D(3.5))
	assert.Equal(t, 0.5, Sigmoid.F(0))
	assert.Equal(t, 0.25, Sigmoid.D(0))
	assert.InDelta(t, 0.7310585786, Sigmoid.F(1), 1e-9)
	assert.InDelta(t, 0.1966119332, Sigmoid.D(1), 1e-9)
	assert.Equal(t, "identity", Identity.String())
	assert.Equal(t, "sigmoid", Sigmoid.String())
}
