package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/minhvu-dev/shopee-track/internal/excel"
	"github.com/minhvu-dev/shopee-track/internal/models"
)

// RunHooks lets callers observe a batch as it runs. Both fields are optional.
type RunHooks struct {
	OnStart  func(total int)
	OnResult func(models.Result)
}

// Run drives one workbook batch end to end: read the product rows,
// dispatch them over the pool, write today's prices into a dated column,
// recompute discounts, save in place. The returned job carries the
// aggregate counts; per-row errors stay inside the job's results and are
// never promoted to a batch error.
func Run(ctx context.Context, store *Store, pool *Pool, path string, hooks *RunHooks) (*Job, error) {
	job := store.Create(path)
	fail := func(err error) (*Job, error) {
		store.Fail(job.ID, err)
		j, _ := store.Get(job.ID)
		return j, err
	}

	wb, err := excel.Open(path)
	if err != nil {
		return fail(err)
	}
	defer wb.Close()

	cfg := wb.Config()
	rows, err := wb.Rows(cfg)
	if err != nil {
		return fail(err)
	}
	if len(rows) == 0 {
		return fail(fmt.Errorf("no product rows found in %s", path))
	}

	store.Start(job.ID, len(rows))
	if hooks != nil && hooks.OnStart != nil {
		hooks.OnStart(len(rows))
	}
	results := pool.Run(ctx, rows, func(res models.Result) {
		store.Progress(job.ID, res)
		if hooks != nil && hooks.OnResult != nil {
			hooks.OnResult(res)
		}
	})

	today := time.Now().Format(excel.DateLayout)
	if err := wb.WritePrices(results, today); err != nil {
		return fail(err)
	}
	if err := wb.ApplyDiscounts(cfg.DiscountColumn); err != nil {
		return fail(err)
	}
	if err := wb.Save(); err != nil {
		return fail(err)
	}

	store.Complete(job.ID)
	j, _ := store.Get(job.ID)
	return j, nil
}
