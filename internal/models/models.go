package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierVariation is one variation axis a listing exposes (e.g. "Color").
// Option order mirrors the marketplace's index order: an option's position
// is the coordinate models use in their tier index.
type TierVariation struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// ModelEntry is one purchasable SKU of a listing. PriceRaw carries the
// marketplace's minor-unit scaling (display price × 100000).
type ModelEntry struct {
	Name      string `json:"name,omitempty"`
	TierIndex []int  `json:"tier_index"`
	PriceRaw  int64  `json:"price"`
	Stock     int    `json:"stock,omitempty"`
}

// ProductRecord is a listing's full variation state at fetch time.
// Records are fetched fresh per price check and never cached or mutated.
type ProductRecord struct {
	ItemID         int64           `json:"itemid,omitempty"`
	ShopID         int64           `json:"shopid,omitempty"`
	Name           string          `json:"name,omitempty"`
	TierVariations []TierVariation `json:"tier_variations"`
	Models         []ModelEntry    `json:"models"`
}

// Row is one spreadsheet row to price-check: a product URL plus up to two
// human-entered variation labels.
type Row struct {
	Index int    `json:"row"`
	URL   string `json:"url"`
	Var1  string `json:"var1,omitempty"`
	Var2  string `json:"var2,omitempty"`
}

// Result is the outcome for one Row. Price is nil when the check failed;
// Err records why. ErrMsg mirrors Err for serialized views of a batch.
// Results stay keyed to their row, not completion order.
type Result struct {
	Row       Row              `json:"row"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Err       error            `json:"-"`
	ErrMsg    string           `json:"error,omitempty"`
	CheckedAt time.Time        `json:"checked_at"`
}

// OK reports whether the row resolved to a price.
func (r Result) OK() bool { return r.Price != nil }
