package shopee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

func TestAPIFetcherFetch(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"itemid":  q.Get("itemid"),
			"shopid":  q.Get("shopid"),
			"item_id": q.Get("item_id"),
			"shop_id": q.Get("shop_id"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"error": nil,
			"data": models.ProductRecord{
				Name: "test item",
				Models: []models.ModelEntry{
					{TierIndex: []int{}, PriceRaw: 2750000000},
				},
			},
		})
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.Client(), srv.URL)
	rec, err := f.Fetch(context.Background(), "123", "456")
	require.NoError(t, err)

	assert.Equal(t, "test item", rec.Name)
	require.Len(t, rec.Models, 1)
	assert.Equal(t, int64(2750000000), rec.Models[0].PriceRaw)

	// Ids go out both in their short and snake_case forms.
	assert.Equal(t, "456", gotQuery["itemid"])
	assert.Equal(t, "123", gotQuery["shopid"])
	assert.Equal(t, "456", gotQuery["item_id"])
	assert.Equal(t, "123", gotQuery["shop_id"])
}

func TestAPIFetcherEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "item not found", "error_msg": "item has been deleted", "data": null}`))
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.Client(), srv.URL)
	_, err := f.Fetch(context.Background(), "1", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "item has been deleted")
}

func TestAPIFetcherNumericEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": 4, "data": null}`))
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.Client(), srv.URL)
	_, err := f.Fetch(context.Background(), "1", "2")
	assert.ErrorIs(t, err, ErrRemote)
}

func TestAPIFetcherHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.Client(), srv.URL)
	_, err := f.Fetch(context.Background(), "1", "2")
	assert.ErrorIs(t, err, ErrHTTP)
}

func TestAPIFetcherTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	f := NewAPIFetcher(http.DefaultClient, srv.URL)
	_, err := f.Fetch(context.Background(), "1", "2")
	assert.ErrorIs(t, err, ErrHTTP)
}

func TestAPIFetcherMissingData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": null}`))
	}))
	defer srv.Close()

	f := NewAPIFetcher(srv.Client(), srv.URL)
	_, err := f.Fetch(context.Background(), "1", "2")
	assert.ErrorIs(t, err, ErrRemote)
}
