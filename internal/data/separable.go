package data

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Hyperplane returns the coefficients of the plane splitting the synthetic classes.
// The coefficients alternate in sign, starting from +1.
func Hyperplane(features int) []float64 {
	w := make([]float64, features)
	for i := range w {
		w[i] = 1
		if i%2 == 1 {
			w[i] = -1
		}
	}
	return w
}

// Separable generates n linearly separable records with features in [-1,1).
// The label is 1 if the record lies on the positive side of the Hyperplane, 0 otherwise.
func Separable(src rand.Source, n, features int) []Record {
	dist := distuv.Uniform{
		Min: -1,
		Max: 1,
		Src: src,
	}
	w := Hyperplane(features)
	records := make([]Record, n)
	for i := range records {
		x := make([]float64, features)
		var score float64
		for j := range x {
			x[j] = dist.Rand()
			score += w[j] * x[j]
		}
		label := 0.0
		if score > 0 {
			label = 1
		}
		records[i] = Record{
			Features: x,
			Label:    []float64{label},
		}
	}
	return records
}
