package algebra

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// FormatVector renders the vector as a single line of signed values.
func FormatVector(v []float64) string {
	builder := strings.Builder{}
	for i, f := range v {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(fmt.Sprintf("%+f", f))
	}
	return builder.String()
}

// FormatMatrix renders the matrix one row per line.
func FormatMatrix(m mat.Matrix) string {
	r, c := m.Dims()
	builder := strings.Builder{}
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = m.At(i, j)
		}
		builder.WriteString(FormatVector(row))
		builder.WriteString("\n")
	}
	return builder.String()
}
