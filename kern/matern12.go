package kern

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	matern12 *Matern12
	_        Kernel = matern12 // Check that Matern12 respects the Kernel interface.
)

// Matern12 is the Matern kernel with smoothness 1/2 (the exponential
// kernel), k(xa, xb) = variance * exp(-||xa - xb|| / lscale).
type Matern12 struct {
	variance float64
	lambda   float64
}

func NewMatern12(variance, lscale float64) (*Matern12, error) {
	if lscale <= 0 {
		return nil, ErrInvalidLengthScale
	}
	if variance <= 0 {
		return nil, ErrInvalidVariance
	}
	return &Matern12{
		variance: variance,
		lambda:   1.0 / lscale,
	}, nil
}

func (k *Matern12) Cov(xa, xb []float64) float64 {
	d := floats.Distance(xa, xb, 2)
	return k.variance * math.Exp(-d*k.lambda)
}
