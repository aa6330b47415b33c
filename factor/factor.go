// Package factor holds the one-time Cholesky factorization of a prior
// covariance matrix, shared read-only by every iteration of a chain.
package factor

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Jitter is added to the diagonal before factorizing so that covariance
// matrices that are only positive semi-definite in floating point still
// admit a Cholesky factor.
const Jitter = 1e-6

var ErrNotPositiveDefinite = errors.New("covariance matrix is not positive definite")

// Factorization is the Cholesky factorization of K + Jitter*I.
//
// The lower factor L is used to draw prior-correlated noise (L z with
// z ~ N(0, I)); its inverse yields the precision matrix used by the prior
// log-density. Proposals never touch the precision matrix, only L.
type Factorization struct {
	n      int
	l      *mat.TriDense
	linv   *mat.TriDense
	logDet float64
}

// New factorizes cov + Jitter*I. It reports ErrNotPositiveDefinite when
// the Cholesky factorization fails, instead of letting NaNs propagate
// into the chain.
func New(cov *mat.SymDense) (*Factorization, error) {
	n := cov.SymmetricDim()
	jittered := mat.NewSymDense(n, nil)
	jittered.CopySym(cov)
	for i := 0; i < n; i++ {
		jittered.SetSym(i, i, cov.At(i, i)+Jitter)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(jittered); !ok {
		return nil, ErrNotPositiveDefinite
	}

	l := mat.NewTriDense(n, mat.Lower, nil)
	chol.LTo(l)
	linv := mat.NewTriDense(n, mat.Lower, nil)
	if err := linv.InverseTri(l); err != nil {
		return nil, ErrNotPositiveDefinite
	}

	return &Factorization{
		n:      n,
		l:      l,
		linv:   linv,
		logDet: chol.LogDet(),
	}, nil
}

// Dim returns the dimension of the factorized matrix.
func (f *Factorization) Dim() int {
	return f.n
}

// L returns the lower-triangular Cholesky factor.
func (f *Factorization) L() *mat.TriDense {
	return f.l
}

// LInv returns the inverse of the Cholesky factor.
func (f *Factorization) LInv() *mat.TriDense {
	return f.linv
}

// LogDet returns log det(K + Jitter*I).
func (f *Factorization) LogDet() float64 {
	return f.logDet
}

// Precision returns the inverse of the factorized covariance,
// L^{-T} L^{-1}, for use in prior density evaluation.
func (f *Factorization) Precision() *mat.SymDense {
	prec := mat.NewSymDense(f.n, nil)
	// L^{-T} (L^{-T})^T = L^{-T} L^{-1}
	prec.SymOuterK(1, f.linv.T())
	return prec
}

// Noise draws a prior-correlated noise vector L z with z ~ N(0, I),
// consuming exactly Dim() normal variates from rng.
func (f *Factorization) Noise(rng *rand.Rand) *mat.VecDense {
	z := mat.NewVecDense(f.n, nil)
	for i := 0; i < f.n; i++ {
		z.SetVec(i, rng.NormFloat64())
	}
	zeta := mat.NewVecDense(f.n, nil)
	zeta.MulVec(f.l, z)
	return zeta
}
