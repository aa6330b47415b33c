// Package dens implements the unnormalized log-densities of the inversion
// model: a zero-mean Gaussian-process log-prior, the observation
// log-likelihoods, and their composition into log-targets.
//
// All functions are pure: state in, scalar out. A likelihood together
// with the prior forms a target; the samplers consume either, depending
// on whether their proposal already accounts for the prior.
package dens

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrLogDetSign = errors.New("precision matrix has non-positive determinant")
var ErrNotImplemented = errors.New("observation model not implemented")
var ErrInvalidObservation = errors.New("observation outside the model's support")

// Likelihood is the log-likelihood of the data given the latent field u,
// observed through the binary selection matrix g.
type Likelihood func(u, data *mat.VecDense, g mat.Matrix) (float64, error)

// Target is an unnormalized log-posterior of the latent field u: the
// Gaussian-process log-prior with precision prec plus a log-likelihood.
type Target func(u, data *mat.VecDense, prec *mat.SymDense, g mat.Matrix) (float64, error)

// Compose pairs the Gaussian-process log-prior with a log-likelihood.
func Compose(ll Likelihood) Target {
	return func(u, data *mat.VecDense, prec *mat.SymDense, g mat.Matrix) (float64, error) {
		lp, err := LogPrior(u, prec)
		if err != nil {
			return 0, err
		}
		lv, err := ll(u, data, g)
		if err != nil {
			return 0, err
		}
		return lp + lv, nil
	}
}

var (
	// ContinuousTarget is the log-posterior under Gaussian observation noise.
	ContinuousTarget = Compose(ContinuousLikelihood)
	// ProbitTarget is the log-posterior under binary probit observations.
	ProbitTarget = Compose(ProbitLikelihood)
	// PoissonTarget is the log-posterior under count observations.
	PoissonTarget = Compose(PoissonLikelihood)
)
