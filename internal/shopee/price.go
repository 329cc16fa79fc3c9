package shopee

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

// The marketplace stores prices scaled ×100000 relative to the display
// currency. The divisor is fixed by that convention.
var priceDivisor = decimal.New(1, 5)

// ExtractPrice returns the display-currency price of the model at
// modelIndex as a full-precision quotient. No rounding happens here; the
// spreadsheet layer decides presentation.
func ExtractPrice(rec *models.ProductRecord, modelIndex int) (decimal.Decimal, error) {
	if len(rec.Models) == 0 {
		return decimal.Zero, ErrNoModels
	}
	if modelIndex < 0 || modelIndex >= len(rec.Models) {
		return decimal.Zero, fmt.Errorf("%w: %d of %d models", ErrIndexOutOfRange, modelIndex, len(rec.Models))
	}
	return decimal.NewFromInt(rec.Models[modelIndex].PriceRaw).Div(priceDivisor), nil
}
