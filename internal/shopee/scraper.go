package shopee

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/minhvu-dev/shopee-track/internal/marketplace"
	"github.com/minhvu-dev/shopee-track/internal/models"
)

// Scraper implements marketplace.PriceSource for Shopee. Fetchers are tried
// fast-to-slow: the item API first, then (when enabled) a rendered-page
// fallback. Records are fetched fresh per price check.
type Scraper struct {
	fetchers []marketplace.Fetcher
	limiter  *rate.Limiter
}

// Options tunes scraper construction.
type Options struct {
	APIBase    string
	MaxRetries int
	// Headless appends the rod-rendered page fallback to the fetch chain.
	Headless bool
}

// NewScraper builds a Shopee price source. Each pool unit gets its own
// scraper and HTTP client; the rate limiter is the one shared resource
// across units.
func NewScraper(client *http.Client, limiter *rate.Limiter, opts Options) *Scraper {
	api := NewAPIFetcher(client, opts.APIBase)
	api.MaxRetries = opts.MaxRetries

	fetchers := []marketplace.Fetcher{api}
	if opts.Headless {
		fetchers = append(fetchers, NewHeadlessFetcher())
	}
	return &Scraper{fetchers: fetchers, limiter: limiter}
}

// ExtractIDs satisfies marketplace.PriceSource.
func (s *Scraper) ExtractIDs(url string) (string, string, error) {
	return ExtractIDs(url)
}

// FetchRecord walks the fetch chain until one fetcher yields a record.
// The last fetcher's error is returned when all fail.
func (s *Scraper) FetchRecord(ctx context.Context, shopID, itemID string) (*models.ProductRecord, error) {
	var lastErr error
	for _, f := range s.fetchers {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		rec, err := f.Fetch(ctx, shopID, itemID)
		if err == nil {
			return rec, nil
		}
		lastErr = err
		marketplace.ReportProgress(ctx, fmt.Sprintf("Fetcher %s failed, trying next...", f.Name()))
	}
	return nil, lastErr
}

// GetPrice runs the whole chain for one product: id extraction, record
// fetch, variation resolution, price extraction.
func (s *Scraper) GetPrice(ctx context.Context, url, var1, var2 string) (decimal.Decimal, error) {
	shopID, itemID, err := ExtractIDs(url)
	if err != nil {
		return decimal.Zero, err
	}

	rec, err := s.FetchRecord(ctx, shopID, itemID)
	if err != nil {
		return decimal.Zero, err
	}

	idx, err := ResolveModelIndex(rec, var1, var2)
	if err != nil {
		return decimal.Zero, err
	}

	return ExtractPrice(rec, idx)
}
