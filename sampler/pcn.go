package sampler

import (
	"context"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/MatthewZhang473/gpmcmc/dens"
	"github.com/MatthewZhang473/gpmcmc/factor"
)

// PCN samples the posterior with the preconditioned Crank-Nicolson
// method. It takes a log-likelihood rather than a log-target: the
// proposal sqrt(1 - beta^2) u + beta * L z preserves the Gaussian prior
// by construction, so the prior cancels from the acceptance ratio and
// only the likelihood difference remains. That cancellation is what makes
// the acceptance rate independent of the field's dimension; adding the
// prior term back in would break detailed balance.
//
// beta must lie in (0, 1).
func PCN(ctx context.Context, ll dens.Likelihood, u0, data *mat.VecDense,
	cov *mat.SymDense, g mat.Matrix, nIters int, beta float64,
	src rand.Source) (*Result, error) {

	if nIters < 1 {
		return nil, ErrInvalidIterCount
	}
	if beta <= 0 || beta >= 1 {
		return nil, ErrInvalidStepSize
	}
	if src == nil {
		return nil, ErrNilSource
	}

	fac, err := factor.New(cov)
	if err != nil {
		return nil, err
	}
	contraction := math.Sqrt(1 - beta*beta)

	eval := func(u *mat.VecDense) (float64, error) {
		return ll(u, data, g)
	}
	propose := func(prev, zeta *mat.VecDense) *mat.VecDense {
		next := mat.NewVecDense(prev.Len(), nil)
		next.ScaleVec(contraction, prev)
		next.AddScaledVec(next, beta, zeta)
		return next
	}
	return run(ctx, fac, u0, nIters, rand.New(src), eval, propose)
}
