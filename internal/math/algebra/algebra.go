package algebra

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// DimensionErr is returned when the operands of a primitive have incompatible shapes.
// The destination of the failed operation is never touched.
var DimensionErr = errors.New("incompatible dimensions")

func dimensionErr(op string, want, got []int) error {
	log.Error().
		Str("op", op).
		Ints("want", want).
		Ints("got", got).
		Msg("sizes are incompatible")
	return fmt.Errorf("%s: expected %v but got %v: %w", op, want, got, DimensionErr)
}

// VecMatMul computes dst = vec x m for a vector of length rows(m).
// dst must have length cols(m) and is fully overwritten.
func VecMatMul(dst []float64, vec []float64, m mat.Matrix) error {
	r, c := m.Dims()
	if len(vec) != r {
		return dimensionErr("vector-matrix", []int{r}, []int{len(vec)})
	}
	if len(dst) != c {
		return dimensionErr("vector-matrix result", []int{c}, []int{len(dst)})
	}
	out := mat.NewVecDense(c, dst)
	out.MulVec(m.T(), mat.NewVecDense(r, vec))
	return nil
}

// MatVecMul computes dst = m x vec for a vector of length cols(m).
// dst must have length rows(m) and is fully overwritten.
func MatVecMul(dst []float64, m mat.Matrix, vec []float64) error {
	r, c := m.Dims()
	if len(vec) != c {
		return dimensionErr("matrix-vector", []int{c}, []int{len(vec)})
	}
	if len(dst) != r {
		return dimensionErr("matrix-vector result", []int{r}, []int{len(dst)})
	}
	out := mat.NewVecDense(r, dst)
	out.MulVec(m, mat.NewVecDense(c, vec))
	return nil
}

// MatMatMul computes dst = a x b.
// dst must be of shape rows(a) x cols(b) and is fully overwritten.
func MatMatMul(dst *mat.Dense, a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return dimensionErr("matrix-matrix", []int{ar, ac, ac, bc}, []int{ar, ac, br, bc})
	}
	if dr, dc := dst.Dims(); dr != ar || dc != bc {
		return dimensionErr("matrix-matrix result", []int{ar, bc}, []int{dr, dc})
	}
	dst.Mul(a, b)
	return nil
}

// MatAccumulate adds src scaled by the given factor to dst, cell by cell.
func MatAccumulate(dst *mat.Dense, src mat.Matrix, scale float64) error {
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if dr != sr || dc != sc {
		return dimensionErr("matrix-update", []int{dr, dc}, []int{sr, sc})
	}
	var scaled mat.Dense
	scaled.Scale(scale, src)
	dst.Add(dst, &scaled)
	return nil
}

// Column wraps the vector as a len(v) x 1 matrix, sharing the backing data.
func Column(v []float64) *mat.Dense {
	return mat.NewDense(len(v), 1, v)
}

// Row wraps the vector as a 1 x len(v) matrix, sharing the backing data.
func Row(v []float64) *mat.Dense {
	return mat.NewDense(1, len(v), v)
}
