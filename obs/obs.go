// Package obs builds the observation-side inputs of the inversion:
// subsampled observation locations, the binary selection matrix mapping
// the latent field to those locations, and transforms between latent
// values and binary observations.
package obs

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/MatthewZhang473/gpmcmc/utils"
)

var ErrInvalidFactor = errors.New("subsampling factor must be at least one")
var ErrBadIndex = errors.New("observation index out of range or repeated")
var ErrNilSource = errors.New("random source must not be nil")

// Subsample picks ceil(n/factor) of the indices 0..n-1 uniformly without
// replacement, using the given random source.
func Subsample(n int, factor float64, src rand.Source) ([]int, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}
	if src == nil {
		return nil, ErrNilSource
	}
	m := int(math.Ceil(float64(n) / factor))
	rng := rand.New(src)
	return rng.Perm(n)[:m], nil
}

// Matrix builds the M-by-N binary selection matrix G for the given
// observation indices: G[i, idx[i]] = 1. Indices must be distinct and in
// range, so that every row sums to one and every column to at most one.
func Matrix(n int, idx []int) (*mat.Dense, error) {
	seen := make(map[int]bool, len(idx))
	g := mat.NewDense(len(idx), n, nil)
	for i, j := range idx {
		if j < 0 || j >= n || seen[j] {
			return nil, ErrBadIndex
		}
		seen[j] = true
		g.Set(i, j, 1)
	}
	return g, nil
}

// Threshold maps latent values to binary observations: 1 where the value
// is non-negative, 0 elsewhere.
func Threshold(v *mat.VecDense) *mat.VecDense {
	t := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) >= 0 {
			t.SetVec(i, 1)
		}
	}
	return t
}

// PredictProbit estimates the posterior predictive p(t = 1) at each
// observed location as the chain average of Phi((G u)_i).
func PredictProbit(chain []*mat.VecDense, g mat.Matrix) *mat.VecDense {
	m, _ := g.Dims()
	probs := mat.NewVecDense(m, nil)
	gu := mat.NewVecDense(m, nil)
	for _, u := range chain {
		gu.MulVec(g, u)
		for i := 0; i < m; i++ {
			probs.SetVec(i, probs.AtVec(i)+utils.NormalCdf(gu.AtVec(i)))
		}
	}
	probs.ScaleVec(1/float64(len(chain)), probs)
	return probs
}
