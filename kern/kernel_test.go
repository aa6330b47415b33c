package kern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSqExpValidation(t *testing.T) {
	_, err := NewSqExp(1.0, 0.0)
	require.ErrorIs(t, err, ErrInvalidLengthScale)
	_, err = NewSqExp(1.0, -2.5)
	require.ErrorIs(t, err, ErrInvalidLengthScale)
	_, err = NewSqExp(0.0, 1.0)
	require.ErrorIs(t, err, ErrInvalidVariance)
}

func TestSqExpUnitSquare(t *testing.T) {
	// Four corners of the unit square with unit length scale.
	coords := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	k, err := NewSqExp(1.0, 1.0)
	require.NoError(t, err)

	cov := CovarianceMatrix(k, coords)
	n := cov.SymmetricDim()
	require.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, cov.At(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, cov.At(i, j), cov.At(j, i))
			if i != j {
				assert.Greater(t, cov.At(i, j), 0.0)
				assert.Less(t, cov.At(i, j), 1.0)
			}
		}
	}
}

func TestSqExpUnitDiagonalAnyScale(t *testing.T) {
	coords := mat.NewDense(3, 2, []float64{0.1, -0.4, 2.0, 3.5, -1.2, 0.8})
	for _, lscale := range []float64{0.01, 1.0, 50.0} {
		k, err := NewSqExp(1.0, lscale)
		require.NoError(t, err)
		cov := CovarianceMatrix(k, coords)
		for i := 0; i < 3; i++ {
			assert.Equal(t, 1.0, cov.At(i, i))
		}
	}
}

func TestMaternAtZeroDistance(t *testing.T) {
	x := []float64{0.3, 0.7}
	m12, err := NewMatern12(2.0, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m12.Cov(x, x), 1e-12)

	m32, err := NewMatern32(0.5, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m32.Cov(x, x), 1e-12)
}

func TestMaternDecaysWithDistance(t *testing.T) {
	m32, err := NewMatern32(1.0, 1.0)
	require.NoError(t, err)
	origin := []float64{0, 0}
	prev := m32.Cov(origin, origin)
	for _, d := range []float64{0.5, 1.0, 2.0, 4.0} {
		cur := m32.Cov(origin, []float64{d, 0})
		assert.Less(t, cur, prev)
		prev = cur
	}
}

func TestAddFlattensAndSums(t *testing.T) {
	c, err := NewConstant(0.5)
	require.NoError(t, err)
	se, err := NewSqExp(1.0, 1.0)
	require.NoError(t, err)
	m12, err := NewMatern12(2.0, 1.0)
	require.NoError(t, err)

	sum := NewAdd(NewAdd(c, se), m12)
	require.Len(t, sum.parts, 3)

	xa := []float64{0, 0}
	xb := []float64{1, 1}
	want := c.Cov(xa, xb) + se.Cov(xa, xb) + m12.Cov(xa, xb)
	assert.InDelta(t, want, sum.Cov(xa, xb), 1e-12)
}
