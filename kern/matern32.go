package kern

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	matern32 *Matern32
	_        Kernel = matern32 // Check that Matern32 respects the Kernel interface.
)

// Matern32 is the Matern kernel with smoothness 3/2,
//
//	k(xa, xb) = variance * (1 + sqrt(3) d / lscale) * exp(-sqrt(3) d / lscale)
type Matern32 struct {
	variance float64
	lambda   float64
}

func NewMatern32(variance, lscale float64) (*Matern32, error) {
	if lscale <= 0 {
		return nil, ErrInvalidLengthScale
	}
	if variance <= 0 {
		return nil, ErrInvalidVariance
	}
	return &Matern32{
		variance: variance,
		lambda:   math.Sqrt(3) / lscale,
	}, nil
}

func (k *Matern32) Cov(xa, xb []float64) float64 {
	da := floats.Distance(xa, xb, 2) * k.lambda
	return k.variance * (1 + da) * math.Exp(-da)
}
