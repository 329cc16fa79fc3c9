package excel

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountPercent is (1 − current/average) × 100 over a row's recorded
// prices, clamped to 0 when either input is non-positive. Positive values
// mean the current price sits below the historical average.
func DiscountPercent(current, average decimal.Decimal) decimal.Decimal {
	if current.Sign() <= 0 || average.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).Sub(current.Div(average)).Mul(hundred)
}
