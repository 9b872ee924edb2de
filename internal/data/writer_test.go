package data

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestWriter_Write(t *testing.T) {
	buffer := new(bytes.Buffer)
	w, err := NewWriter(buffer, DefaultFormat())
	require.NoError(t, err)

	require.NoError(t, w.Write(Record{
		Features: []float64{0.1234, -0.5678, 0.9012},
		Label:    []float64{1},
	}))
	require.NoError(t, w.Write(Record{
		Features: []float64{0, 0.5, -1},
		Label:    []float64{0},
	}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "+0.1234-0.5678+0.9012+1.00\n+0.0000+0.5000-1.0000+0.00\n", buffer.String())
}

func TestWriter_Invalid(t *testing.T) {
	w, err := NewWriter(new(bytes.Buffer), DefaultFormat())
	require.NoError(t, err)

	assert.ErrorIs(t, w.Write(Record{Features: []float64{1, 2}, Label: []float64{1}}), FormatErr)
	assert.ErrorIs(t, w.Write(Record{Features: []float64{1, 2, 3}}), FormatErr)
}

func TestField(t *testing.T) {

	type test struct {
		v     float64
		width int
		s     string
		err   bool
	}

	tests := map[string]test{
		"exact":        {v: 0.5, width: 7, s: "+0.5000"},
		"padded":       {v: 0.5, width: 10, s: "+0.5000   "},
		"rounded":      {v: -12.3456, width: 7, s: "-12.346"},
		"label":        {v: 1, width: 5, s: "+1.00"},
		"integer":      {v: 123456, width: 7, s: "+123456"},
		"rounded-up":   {v: 99999.6, width: 6, err: true},
		"too-wide":     {v: 1234567, width: 7, err: true},
		"too-negative": {v: -10, width: 2, err: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := field(tt.v, tt.width)
			if tt.err {
				assert.ErrorIs(t, err, FormatErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.s, s)
			assert.Len(t, s, tt.width)
		})
	}
}

func TestWriter_DoesNotFit(t *testing.T) {
	buffer := new(bytes.Buffer)
	w, err := NewWriter(buffer, DefaultFormat())
	require.NoError(t, err)

	err = w.Write(Record{
		Features: []float64{1234567, 0, 0},
		Label:    []float64{10},
	})
	assert.ErrorIs(t, err, FormatErr)

	require.NoError(t, w.Write(Record{
		Features: []float64{123456, 0, 0},
		Label:    []float64{10},
	}))
	require.NoError(t, w.Flush())

	r, err := NewReader(buffer, DefaultFormat())
	require.NoError(t, err)
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []float64{123456, 0, 0}, records[0].Features)
	assert.Equal(t, []float64{10}, records[0].Label)
}

func TestSeparable(t *testing.T) {
	records := Separable(rand.NewSource(1), 1000, 3)
	require.Len(t, records, 1000)

	w := Hyperplane(3)
	assert.Equal(t, []float64{1, -1, 1}, w)

	var positive int
	for _, r := range records {
		require.Len(t, r.Features, 3)
		require.Len(t, r.Label, 1)
		var score float64
		for j, x := range r.Features {
			assert.GreaterOrEqual(t, x, -1.0)
			assert.Less(t, x, 1.0)
			score += w[j] * x
		}
		assert.Equal(t, score > 0, r.Label[0] == 1)
		if r.Label[0] == 1 {
			positive++
		}
	}
	// both classes are present
	assert.Greater(t, positive, 100)
	assert.Less(t, positive, 900)

	assert.Equal(t, records, Separable(rand.NewSource(1), 1000, 3))
}

func TestSeparable_RoundTrip(t *testing.T) {
	records := Separable(rand.NewSource(2), 50, 3)

	buffer := new(bytes.Buffer)
	w, err := NewWriter(buffer, DefaultFormat())
	require.NoError(t, err)
	for _, r := range records {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Flush())

	r, err := NewReader(buffer, DefaultFormat())
	require.NoError(t, err)
	read, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, read, len(records))
	for i := range records {
		assert.InDeltaSlice(t, records[i].Features, read[i].Features, 1e-4)
		assert.Equal(t, records[i].Label, read[i].Label)
	}
}
