package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Standard normal cumulative distribution function.
func NormalCdf(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// Standard normal probability density function.
func NormalPdf(z float64) float64 {
	return math.Exp(-z*z/2) / (math.Sqrt2 * math.SqrtPi)
}

// Identity matrix.
func Eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}
