package sampler

import (
	"context"
	"errors"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidChainCount = errors.New("chain count must be at least one")

// RunChains runs nChains independent chains concurrently and returns
// their results in order. Chain i receives its own random stream derived
// from (seed, i), so a fixed seed reproduces every chain regardless of
// scheduling. The first chain error cancels the rest.
func RunChains(ctx context.Context, nChains int, seed uint64,
	run func(ctx context.Context, src rand.Source) (*Result, error)) ([]*Result, error) {

	if nChains < 1 {
		return nil, ErrInvalidChainCount
	}
	grp, ctx := errgroup.WithContext(ctx)
	results := make([]*Result, nChains)
	for i := range results {
		src := rand.NewPCG(seed, uint64(i))
		grp.Go(func() error {
			res, err := run(ctx, src)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
