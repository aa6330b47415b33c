package dens

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ContinuousLikelihood is the log-density of data ~ N(G u, I),
//
//	-1/2 ||data - G u||^2 - m/2 log(2 pi)
func ContinuousLikelihood(u, data *mat.VecDense, g mat.Matrix) (float64, error) {
	m := data.Len()
	noise := mat.NewVecDense(m, nil)
	noise.MulVec(g, u)
	noise.SubVec(data, noise)
	mahalanobis := mat.Dot(noise, noise)
	return -0.5*mahalanobis - 0.5*float64(m)*log2Pi, nil
}

// ProbitLikelihood is the log-likelihood of binary observations through a
// probit link: data_i ~ Bernoulli(Phi((G u)_i)),
//
//	sum t_i log Phi((Gu)_i) + (1 - t_i) log Phi(-(Gu)_i)
//
// using log(1 - Phi(z)) = log Phi(-z). Both terms go through logPhi, so
// the result stays finite even where Phi saturates to 0 or 1 in floating
// point. Observations must be 0 or 1.
func ProbitLikelihood(u, data *mat.VecDense, g mat.Matrix) (float64, error) {
	m := data.Len()
	gu := mat.NewVecDense(m, nil)
	gu.MulVec(g, u)
	total := 0.0
	for i := 0; i < m; i++ {
		t := data.AtVec(i)
		if t != 0 && t != 1 {
			return 0, ErrInvalidObservation
		}
		z := gu.AtVec(i)
		if t == 1 {
			total += logPhi(z)
		} else {
			total += logPhi(-z)
		}
	}
	return total, nil
}

// PoissonLikelihood is the log-likelihood of count observations with a
// log link, data_i ~ Poisson(exp((G u)_i)),
//
//	sum c_i (Gu)_i - exp((Gu)_i) - log(c_i!)
//
// The log link keeps every rate strictly positive for any latent field.
// Observations must be non-negative integers.
func PoissonLikelihood(u, data *mat.VecDense, g mat.Matrix) (float64, error) {
	m := data.Len()
	gu := mat.NewVecDense(m, nil)
	gu.MulVec(g, u)
	total := 0.0
	for i := 0; i < m; i++ {
		c := data.AtVec(i)
		if c < 0 || c != math.Floor(c) {
			return 0, ErrInvalidObservation
		}
		pois := distuv.Poisson{Lambda: math.Exp(gu.AtVec(i))}
		total += pois.LogProb(c)
	}
	return total, nil
}
