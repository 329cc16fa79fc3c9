package marketplace

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

// Fetcher is one way of obtaining a listing's product record.
// Implementations are tried in a fast-to-slow chain by a PriceSource.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, shopID, itemID string) (*models.ProductRecord, error)
}

// PriceSource resolves a product URL plus optional variation labels to a
// single price. One price check is one unit of work in the dispatch pool.
type PriceSource interface {
	GetPrice(ctx context.Context, url, var1, var2 string) (decimal.Decimal, error)
	ExtractIDs(url string) (shopID, itemID string, err error)
	FetchRecord(ctx context.Context, shopID, itemID string) (*models.ProductRecord, error)
}
