package sampler

import (
	"context"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/MatthewZhang473/gpmcmc/dens"
	"github.com/MatthewZhang473/gpmcmc/factor"
)

// RandomWalk samples the posterior defined by target with Gaussian
// random-walk Metropolis-Hastings, starting from u0 and running for
// nIters iterations.
//
// Proposals are u + beta * L z with L the Cholesky factor of the prior
// covariance, so steps follow the prior's spatial correlation structure
// rather than moving each coordinate independently.
func RandomWalk(ctx context.Context, target dens.Target, u0, data *mat.VecDense,
	cov *mat.SymDense, g mat.Matrix, nIters int, beta float64,
	src rand.Source) (*Result, error) {

	if nIters < 1 {
		return nil, ErrInvalidIterCount
	}
	if beta < 0 {
		return nil, ErrInvalidStepSize
	}
	if src == nil {
		return nil, ErrNilSource
	}

	// Factorized once: reused for every proposal and, through the
	// precision matrix, for every prior evaluation.
	fac, err := factor.New(cov)
	if err != nil {
		return nil, err
	}
	prec := fac.Precision()

	eval := func(u *mat.VecDense) (float64, error) {
		return target(u, data, prec, g)
	}
	propose := func(prev, zeta *mat.VecDense) *mat.VecDense {
		next := mat.NewVecDense(prev.Len(), nil)
		next.AddScaledVec(prev, beta, zeta)
		return next
	}
	return run(ctx, fac, u0, nIters, rand.New(src), eval, propose)
}
