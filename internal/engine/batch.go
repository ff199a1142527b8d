package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const defaultConcurrency = 8

// BatchItem is one listing together with the comparables it is priced
// against.
type BatchItem struct {
	Listing     domain.ListingRecord
	Comparables domain.ComparableSaleSet
}

// Outcome is the result of evaluating one BatchItem. Err is set when the
// listing could not be evaluated; Result is then the zero value.
type Outcome struct {
	Listing domain.ListingRecord
	Result  domain.EvaluationResult
	Err     error
}

// EvaluateBatch evaluates items on a bounded pool of workers. Outcomes are
// returned in input order regardless of scheduling. A per-item evaluation
// error is recorded on its Outcome; only context cancellation fails the
// whole batch.
func EvaluateBatch(
	ctx context.Context,
	items []BatchItem,
	localSupply int,
	fuel score.FuelParams,
	params score.Params,
	concurrency int,
) ([]Outcome, error) {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	out := make([]Outcome, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := score.Evaluate(&items[i].Listing, items[i].Comparables, localSupply, fuel, params)
			out[i] = Outcome{Listing: items[i].Listing, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
