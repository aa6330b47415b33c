package kern

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	sqExp *SqExp
	_     Kernel = sqExp // Check that SqExp respects the Kernel interface.
)

// SqExp is the squared-exponential (Gaussian) kernel,
//
//	k(xa, xb) = variance * exp(-||xa - xb||^2 / (2 * lscale^2))
type SqExp struct {
	variance float64
	lscale   float64
}

func NewSqExp(variance, lscale float64) (*SqExp, error) {
	if lscale <= 0 {
		return nil, ErrInvalidLengthScale
	}
	if variance <= 0 {
		return nil, ErrInvalidVariance
	}
	return &SqExp{
		variance: variance,
		lscale:   lscale,
	}, nil
}

func (k *SqExp) Cov(xa, xb []float64) float64 {
	d := floats.Distance(xa, xb, 2)
	return k.variance * math.Exp(-d*d/(2*k.lscale*k.lscale))
}
