package shopee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

func TestExtractPrice(t *testing.T) {
	rec := phoneRecord()

	price, err := ExtractPrice(rec, 0)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(27500)), "got %s", price)

	price, err = ExtractPrice(rec, 1)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(31500)), "got %s", price)
}

func TestExtractPriceKeepsFractionalPart(t *testing.T) {
	rec := &models.ProductRecord{
		Models: []models.ModelEntry{{PriceRaw: 2750050}},
	}
	price, err := ExtractPrice(rec, 0)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("27.5005")), "got %s", price)
}

func TestExtractPriceNoModels(t *testing.T) {
	rec := &models.ProductRecord{}
	_, err := ExtractPrice(rec, 0)
	assert.ErrorIs(t, err, ErrNoModels)
}

func TestExtractPriceIndexOutOfRange(t *testing.T) {
	rec := phoneRecord()

	_, err := ExtractPrice(rec, len(rec.Models))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = ExtractPrice(rec, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
