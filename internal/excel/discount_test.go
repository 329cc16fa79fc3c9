package excel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		current string
		average string
		want    string
	}{
		{"below average", "80", "100", "20"},
		{"above average is negative", "120", "100", "-20"},
		{"equal is zero", "100", "100", "0"},
		{"zero current clamps", "0", "100", "0"},
		{"zero average clamps", "100", "0", "0"},
		{"negative average clamps", "100", "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := decimal.RequireFromString(tt.current)
			average := decimal.RequireFromString(tt.average)
			want := decimal.RequireFromString(tt.want)

			got := DiscountPercent(current, average)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}
}
