// Package kern provides covariance kernels over spatial coordinates and
// the construction of dense prior covariance matrices from them.
package kern

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrInvalidLengthScale = errors.New("length scale must be positive")
var ErrInvalidVariance = errors.New("variance must be positive")

// Kernel is a stationary covariance function between two coordinates.
type Kernel interface {
	// Covariance between the points at coordinates xa and xb.
	Cov(xa, xb []float64) float64
}

// CovarianceMatrix builds the N-by-N prior covariance of the latent field
// at the given coordinates (one row of coords per point). The result is
// symmetric by construction; strict positive definiteness is the
// factorizer's concern (diagonal jitter).
func CovarianceMatrix(k Kernel, coords *mat.Dense) *mat.SymDense {
	n, _ := coords.Dims()
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		xi := coords.RawRowView(i)
		for j := i; j < n; j++ {
			cov.SetSym(i, j, k.Cov(xi, coords.RawRowView(j)))
		}
	}
	return cov
}
