package tracker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minhvu-dev/shopee-track/internal/marketplace"
	"github.com/minhvu-dev/shopee-track/internal/models"
)

// DefaultWorkers is the pool size when the caller does not supply one.
const DefaultWorkers = 4

// Pool dispatches price checks over a bounded set of workers. Units share
// no mutable state: every unit gets its own price source (and with it its
// own HTTP client) from the factory. The only deliberately shared resource
// is whatever rate limiter the factory bakes into its sources.
type Pool struct {
	workers   int
	newSource func() marketplace.PriceSource
}

func NewPool(workers int, newSource func() marketplace.PriceSource) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pool{workers: workers, newSource: newSource}
}

// Run checks every row and returns one result per row, in row order
// regardless of completion order. A unit's failure never cancels or
// affects its siblings: errors are captured on the row's result and the
// batch always runs to completion of all submitted units.
//
// onDone, if non-nil, is called once per finished unit and may be called
// from multiple goroutines.
func (p *Pool) Run(ctx context.Context, rows []models.Row, onDone func(models.Result)) []models.Result {
	results := make([]models.Result, len(rows))

	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	for i, row := range rows {
		g.Go(func() error {
			src := p.newSource()
			price, err := src.GetPrice(ctx, row.URL, row.Var1, row.Var2)

			res := models.Result{Row: row, CheckedAt: time.Now()}
			if err != nil {
				res.Err = err
				res.ErrMsg = err.Error()
			} else {
				res.Price = &price
			}
			results[i] = res

			if onDone != nil {
				onDone(res)
			}
			return nil
		})
	}
	g.Wait()

	return results
}

// FailureCount is the aggregate number of rows without a price. The batch
// driver surfaces this count, not the individual errors.
func FailureCount(results []models.Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
