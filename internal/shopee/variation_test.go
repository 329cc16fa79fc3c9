package shopee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

func phoneRecord() *models.ProductRecord {
	return &models.ProductRecord{
		TierVariations: []models.TierVariation{
			{Name: "Color", Options: []string{"Black", "White"}},
			{Name: "Size", Options: []string{"128GB", "256GB"}},
		},
		Models: []models.ModelEntry{
			{TierIndex: []int{0, 0}, PriceRaw: 2750000000},
			{TierIndex: []int{0, 1}, PriceRaw: 3150000000},
			{TierIndex: []int{1, 0}, PriceRaw: 2750000000},
		},
	}
}

func TestResolveOptionIndex(t *testing.T) {
	rec := phoneRecord()

	tests := []struct {
		name     string
		axisHint string
		value    string
		want     int
	}{
		{"exact match", "Color", "Black", 0},
		{"case insensitive", "color", "BLACK", 0},
		{"whitespace trimmed", " Color ", " Black ", 0},
		{"second option", "Color", "White", 1},
		{"axis hint substring of axis name", "Col", "White", 1},
		{"axis name substring of hint", "Colour / Color", "Black", 0},
		{"option value substring", "Size", "256", 1},
		{"unknown axis", "Material", "Black", -1},
		{"unknown option", "Color", "Red", -1},
		{"empty hint", "", "Black", -1},
		{"empty value", "Color", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOptionIndex(rec, tt.axisHint, tt.value))
		})
	}
}

func TestResolveOptionIndexFirstAxisWins(t *testing.T) {
	// Both axes match the loose hint "size"; only the first matching axis is
	// scanned, so an option that lives in the second one is not found.
	rec := &models.ProductRecord{
		TierVariations: []models.TierVariation{
			{Name: "Size", Options: []string{"S", "M"}},
			{Name: "Shoe Size", Options: []string{"40", "41"}},
		},
	}
	assert.Equal(t, -1, ResolveOptionIndex(rec, "size", "41"))
	assert.Equal(t, 1, ResolveOptionIndex(rec, "size", "M"))
}

func TestResolveOptionIndexSubstringCollision(t *testing.T) {
	// "S" is a substring of "XS", so the first structural match wins even
	// though an exact match exists later. There is no exact-over-partial
	// precedence.
	rec := &models.ProductRecord{
		TierVariations: []models.TierVariation{
			{Name: "Size", Options: []string{"XS", "S", "M"}},
		},
	}
	assert.Equal(t, 0, ResolveOptionIndex(rec, "Size", "S"))
}

func TestResolveModelIndex(t *testing.T) {
	rec := phoneRecord()

	tests := []struct {
		name string
		var1 string
		var2 string
		want int
	}{
		{"both empty returns base model", "", "", 0},
		{"both resolved", "Black", "256GB", 1},
		{"both resolved other combo", "White", "128GB", 2},
		{"only var1 given", "White", "", 2},
		{"var1 given var2 unmatched", "Black", "512GB", 0},
		{"var1 unmatched skips model scan", "Red", "256GB", 0},
		{"whitespace labels", " black ", " 256gb ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveModelIndex(rec, tt.var1, tt.var2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveModelIndexNoAxes(t *testing.T) {
	rec := &models.ProductRecord{
		Models: []models.ModelEntry{{TierIndex: []int{}, PriceRaw: 100000}},
	}
	got, err := ResolveModelIndex(rec, "Black", "")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestResolveModelIndexEmptyLabelsIgnoreRecordShape(t *testing.T) {
	// The base model is returned unconditionally, even for records whose
	// models are malformed: nothing is scanned.
	rec := &models.ProductRecord{
		TierVariations: []models.TierVariation{
			{Name: "Color", Options: []string{"Black"}},
		},
		Models: []models.ModelEntry{{TierIndex: []int{}, PriceRaw: 100000}},
	}
	got, err := ResolveModelIndex(rec, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestResolveModelIndexTierIndexMismatch(t *testing.T) {
	rec := phoneRecord()
	rec.Models[1].TierIndex = []int{0} // two axes, one coordinate

	_, err := ResolveModelIndex(rec, "Black", "256GB")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTierIndexMismatch)
}
