package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalCdf(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCdf(0), 1e-15)
	assert.InDelta(t, 0.8413447460685429, NormalCdf(1), 1e-12)
	for _, z := range []float64{0.3, 1.7, 4.2} {
		assert.InDelta(t, 1.0, NormalCdf(z)+NormalCdf(-z), 1e-15)
	}
}

func TestNormalPdf(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), NormalPdf(0), 1e-15)
	assert.Equal(t, NormalPdf(1.3), NormalPdf(-1.3))
}

func TestEye(t *testing.T) {
	eye := Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1.0, eye.At(i, j))
			} else {
				assert.Equal(t, 0.0, eye.At(i, j))
			}
		}
	}
}
