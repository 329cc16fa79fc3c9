package tracker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/shopee-track/internal/marketplace"
	"github.com/minhvu-dev/shopee-track/internal/models"
)

// fakeSource prices URLs from a fixed table and fails the rest.
type fakeSource struct {
	prices map[string]int64
}

func (f *fakeSource) GetPrice(_ context.Context, url, _, _ string) (decimal.Decimal, error) {
	raw, ok := f.prices[url]
	if !ok {
		return decimal.Zero, fmt.Errorf("no such product: %s", url)
	}
	return decimal.NewFromInt(raw), nil
}

func (f *fakeSource) ExtractIDs(string) (string, string, error) { return "", "", nil }

func (f *fakeSource) FetchRecord(context.Context, string, string) (*models.ProductRecord, error) {
	return nil, nil
}

func TestPoolRunIsolatesFailures(t *testing.T) {
	// Ten units, one of which fails: ten results come back, the failed one
	// absent, the other nine priced and keyed to their rows.
	prices := make(map[string]int64)
	rows := make([]models.Row, 10)
	for i := range rows {
		url := fmt.Sprintf("https://shopee.vn/p-i.1.%d", i)
		rows[i] = models.Row{Index: i + 2, URL: url}
		if i != 3 {
			prices[url] = int64(1000 + i)
		}
	}

	pool := NewPool(4, func() marketplace.PriceSource {
		return &fakeSource{prices: prices}
	})
	results := pool.Run(context.Background(), rows, nil)

	require.Len(t, results, 10)
	for i, res := range results {
		assert.Equal(t, rows[i].Index, res.Row.Index, "result %d keyed to wrong row", i)
		if i == 3 {
			assert.False(t, res.OK())
			assert.Error(t, res.Err)
			continue
		}
		require.True(t, res.OK(), "unit %d should have a price", i)
		assert.True(t, res.Price.Equal(decimal.NewFromInt(int64(1000+i))))
	}

	assert.Equal(t, 1, FailureCount(results))
}

func TestPoolRunEachUnitGetsOwnSource(t *testing.T) {
	var built atomic.Int32
	pool := NewPool(2, func() marketplace.PriceSource {
		built.Add(1)
		return &fakeSource{}
	})

	rows := []models.Row{
		{Index: 2, URL: "a"},
		{Index: 3, URL: "b"},
		{Index: 4, URL: "c"},
	}
	pool.Run(context.Background(), rows, nil)

	assert.Equal(t, int32(3), built.Load())
}

func TestPoolRunReportsEveryUnit(t *testing.T) {
	pool := NewPool(0, func() marketplace.PriceSource { return &fakeSource{} })

	var mu sync.Mutex
	var seen []int
	rows := []models.Row{{Index: 2, URL: "a"}, {Index: 3, URL: "b"}}
	pool.Run(context.Background(), rows, func(res models.Result) {
		mu.Lock()
		seen = append(seen, res.Row.Index)
		mu.Unlock()
	})

	assert.ElementsMatch(t, []int{2, 3}, seen)
}

func TestNewPoolDefaultsWorkerCount(t *testing.T) {
	pool := NewPool(0, nil)
	assert.Equal(t, DefaultWorkers, pool.workers)
}
