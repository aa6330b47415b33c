package kern

var (
	add *Add
	_   Kernel = add // Check that Add respects the Kernel interface.
)

// Add is the sum of two or more kernels. Sums of valid covariance
// functions are covariance functions, so nesting is flattened.
type Add struct {
	parts []Kernel
}

func NewAdd(first, second Kernel) *Add {
	parts := make([]Kernel, 0, 2)
	switch first := first.(type) {
	case *Add:
		parts = append(parts, first.parts...)
	default:
		parts = append(parts, first)
	}
	switch second := second.(type) {
	case *Add:
		parts = append(parts, second.parts...)
	default:
		parts = append(parts, second)
	}
	return &Add{
		parts: parts,
	}
}

func (k *Add) Cov(xa, xb []float64) float64 {
	total := 0.0
	for _, part := range k.parts {
		total += part.Cov(xa, xb)
	}
	return total
}
