package sampler

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/MatthewZhang473/gpmcmc/dens"
)

func TestRunChainsValidation(t *testing.T) {
	_, err := RunChains(context.Background(), 0, 1,
		func(ctx context.Context, src rand.Source) (*Result, error) {
			return nil, nil
		})
	require.ErrorIs(t, err, ErrInvalidChainCount)
}

func TestRunChains(t *testing.T) {
	p := newLineProblem(t, 8, 0.1, 4)
	u0 := mat.NewVecDense(8, nil)
	ctx := context.Background()

	run := func(ctx context.Context, src rand.Source) (*Result, error) {
		return RandomWalk(ctx, dens.ContinuousTarget, u0, p.data, p.cov, p.g, 100, 0.3, src)
	}

	results, err := RunChains(ctx, 3, 42, run)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		require.NotNil(t, res)
		require.Len(t, res.Chain, 100)
	}

	// Chains with distinct streams should not coincide.
	assert.False(t, mat.Equal(results[0].Last(), results[1].Last()))

	// A fixed seed reproduces every chain.
	again, err := RunChains(ctx, 3, 42, run)
	require.NoError(t, err)
	for i := range results {
		require.Equal(t, results[i].AcceptRate, again[i].AcceptRate)
		assert.True(t, mat.Equal(results[i].Last(), again[i].Last()))
	}
}

func TestRunChainsPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunChains(context.Background(), 4, 1,
		func(ctx context.Context, src rand.Source) (*Result, error) {
			return nil, boom
		})
	require.ErrorIs(t, err, boom)
}
