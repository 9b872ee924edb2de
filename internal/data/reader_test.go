package data

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Next(t *testing.T) {

	type test struct {
		input   string
		records []Record
		err     bool
		line    int
	}

	tests := map[string]test{
		"single": {
			input: "+0.1234-0.5678+0.9012+1.00\n",
			records: []Record{
				{Features: []float64{0.1234, -0.5678, 0.9012}, Label: []float64{1}},
			},
		},
		"padded": {
			input: " 0.1   " + "-0.2   " + " 0.3   " + " 0   " + "\n",
			records: []Record{
				{Features: []float64{0.1, -0.2, 0.3}, Label: []float64{0}},
			},
		},
		"long-line": {
			input: "+0.1234-0.5678+0.9012+1.00 ignored\n",
			records: []Record{
				{Features: []float64{0.1234, -0.5678, 0.9012}, Label: []float64{1}},
			},
		},
		"short-label": {
			input: "+0.1234-0.5678+0.9012 1",
			records: []Record{
				{Features: []float64{0.1234, -0.5678, 0.9012}, Label: []float64{1}},
			},
		},
		"blank-lines": {
			input: "\n+0.1000+0.2000+0.3000+0.00\n\r\n+0.4000+0.5000+0.6000+1.00\n\n",
			records: []Record{
				{Features: []float64{0.1, 0.2, 0.3}, Label: []float64{0}},
				{Features: []float64{0.4, 0.5, 0.6}, Label: []float64{1}},
			},
		},
		"empty": {
			records: []Record{},
		},
		"missing-label": {
			input: "+0.1234-0.5678+0.9012\n",
			err:   true,
			line:  1,
		},
		"short": {
			input: "+0.1000+0.2000+0.3000+0.00\n+0.12\n",
			err:   true,
			line:  2,
		},
		"not-a-number": {
			input: "+0.1234abcdefg+0.9012+1.00\n",
			err:   true,
			line:  1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := NewReader(strings.NewReader(tt.input), DefaultFormat())
			require.NoError(t, err)
			records, err := r.ReadAll()
			if tt.err {
				assert.ErrorIs(t, err, FormatErr)
				assert.Contains(t, err.Error(), "line")
				assert.Equal(t, tt.line, r.Line())
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.records), len(records))
			for i, record := range records {
				assert.InDeltaSlice(t, tt.records[i].Features, record.Features, 1e-9)
				assert.Equal(t, tt.records[i].Label, record.Label)
			}
		})
	}
}

func TestReader_EOF(t *testing.T) {
	r, err := NewReader(strings.NewReader("+0.1000+0.2000+0.3000+1.00\n"), DefaultFormat())
	require.NoError(t, err)

	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNewReader_InvalidFormat(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), Format{Features: 3})
	assert.ErrorIs(t, err, FormatErr)
}
