// Package sampler implements Metropolis-Hastings sampling of a latent
// spatial field under a Gaussian-process prior: a covariance-
// preconditioned random-walk sampler and a preconditioned Crank-Nicolson
// sampler.
//
// Each invocation factorizes the prior covariance once, then iterates;
// a chain is strictly sequential and owns its random stream, so
// independent chains may run concurrently (see RunChains).
package sampler

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/MatthewZhang473/gpmcmc/factor"
)

var ErrInvalidIterCount = errors.New("iteration count must be at least one")
var ErrInvalidStepSize = errors.New("step size outside the sampler's valid range")
var ErrNilSource = errors.New("random source must not be nil")

// Result is a finished chain: one state per iteration, repeats included,
// and the fraction of proposals that were accepted.
type Result struct {
	Chain      []*mat.VecDense
	AcceptRate float64
}

// Mean returns the per-coordinate average over the chain, the Monte Carlo
// estimate of the posterior mean of the latent field.
func (r *Result) Mean() *mat.VecDense {
	mean := mat.NewVecDense(r.Chain[0].Len(), nil)
	for _, u := range r.Chain {
		mean.AddVec(mean, u)
	}
	mean.ScaleVec(1/float64(len(r.Chain)), mean)
	return mean
}

// Last returns the final state of the chain.
func (r *Result) Last() *mat.VecDense {
	return r.Chain[len(r.Chain)-1]
}

// run is the accept/reject loop shared by both samplers. eval returns the
// cached log-density (target or likelihood, depending on the variant) and
// propose builds the next candidate from the previous state and a
// prior-correlated noise draw.
//
// Per iteration the random stream is consumed in a fixed order: the
// proposal noise first, then the acceptance threshold.
func run(ctx context.Context, fac *factor.Factorization, u0 *mat.VecDense,
	nIters int, rng *rand.Rand,
	eval func(u *mat.VecDense) (float64, error),
	propose func(prev, zeta *mat.VecDense) *mat.VecDense) (*Result, error) {

	prev := mat.VecDenseCopyOf(u0)
	lpPrev, err := eval(prev)
	if err != nil {
		return nil, err
	}

	chain := make([]*mat.VecDense, 0, nIters)
	accepted := 0
	for i := 0; i < nIters; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		zeta := fac.Noise(rng)
		next := propose(prev, zeta)
		lpNext, err := eval(next)
		if err != nil {
			return nil, err
		}

		// Accept with probability min(1, exp(lpNext - lpPrev)).
		if math.Log(rng.Float64()) < lpNext-lpPrev {
			accepted++
			prev = next
			lpPrev = lpNext
		}
		// States are never mutated once proposed, so a rejection can
		// repeat the previous state by reference.
		chain = append(chain, prev)
	}
	return &Result{
		Chain:      chain,
		AcceptRate: float64(accepted) / float64(nIters),
	}, nil
}
