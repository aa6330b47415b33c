package dens

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const log2Pi = 1.8378770664093456 // log(2*pi)

// LogPrior is the log-density at u of the zero-mean Gaussian process with
// precision matrix prec = K^{-1},
//
//	-1/2 u^T K^{-1} u - 1/2 log det(K) - d/2 log(2 pi)
//
// log det(K) is recovered as -log det(K^{-1}) through the sign/log-det
// decomposition, which stays finite for ill-conditioned K. A non-positive
// sign means the precision matrix is not a valid covariance inverse and
// is reported as ErrLogDetSign.
func LogPrior(u *mat.VecDense, prec *mat.SymDense) (float64, error) {
	d := u.Len()

	mahalanobis := mat.Inner(u, prec, u)

	logDetPrec, sign := mat.LogDet(prec)
	if sign <= 0 || math.IsNaN(logDetPrec) {
		return 0, ErrLogDetSign
	}
	logDetK := -logDetPrec

	return -0.5*mahalanobis - 0.5*logDetK - 0.5*float64(d)*log2Pi, nil
}
