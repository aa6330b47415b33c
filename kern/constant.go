package kern

var (
	constant *Constant
	_        Kernel = constant // Check that Constant respects the Kernel interface.
)

// Constant is a kernel with the same covariance between every pair of
// points. On its own it yields a rank-one prior; it is mostly useful as a
// bias term inside a sum kernel.
type Constant struct {
	variance float64
}

func NewConstant(variance float64) (*Constant, error) {
	if variance <= 0 {
		return nil, ErrInvalidVariance
	}
	return &Constant{
		variance: variance,
	}, nil
}

func (k *Constant) Cov(xa, xb []float64) float64 {
	return k.variance
}
