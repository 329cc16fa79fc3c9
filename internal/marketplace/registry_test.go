package marketplace

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

type nopSource struct{}

func (nopSource) GetPrice(ctx context.Context, url, var1, var2 string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (nopSource) ExtractIDs(url string) (string, string, error) { return "", "", nil }
func (nopSource) FetchRecord(ctx context.Context, shopID, itemID string) (*models.ProductRecord, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	Register("test-source", nopSource{})

	got, err := Get("test-source")
	require.NoError(t, err)
	assert.NotNil(t, got)

	assert.Contains(t, List(), "test-source")

	_, err = Get("never-registered")
	assert.Error(t, err)
}
