package shopee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/minhvu-dev/shopee-track/internal/httputil"
	"github.com/minhvu-dev/shopee-track/internal/models"
)

// DefaultAPIBase is the v4 item endpoint product records are fetched from.
const DefaultAPIBase = "https://shopee.vn/api/v4/item/get"

// APIFetcher fetches product records from the item API. It is the fast
// primary in the fetch chain.
type APIFetcher struct {
	client  *http.Client
	baseURL string

	// MaxRetries controls transport-level retries in httputil.DoWithRetry.
	// Zero by default: retry policy belongs to the batch driver's caller,
	// not the core.
	MaxRetries int
}

func NewAPIFetcher(client *http.Client, baseURL string) *APIFetcher {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &APIFetcher{client: client, baseURL: baseURL}
}

func (f *APIFetcher) Name() string { return "api" }

// apiEnvelope is the item API response wrapper. The error field is null on
// success; RawMessage tolerates both the documented string form and the
// numeric codes the endpoint occasionally emits.
type apiEnvelope struct {
	Error    json.RawMessage       `json:"error"`
	ErrorMsg string                `json:"error_msg"`
	Data     *models.ProductRecord `json:"data"`
}

func (e *apiEnvelope) hasError() bool {
	return len(e.Error) > 0 && !bytes.Equal(e.Error, []byte("null"))
}

// Fetch performs one GET against the item endpoint and decodes the record.
// The endpoint expects the ids both in their short and snake_case forms.
func (f *APIFetcher) Fetch(ctx context.Context, shopID, itemID string) (*models.ProductRecord, error) {
	params := url.Values{}
	params.Set("itemid", itemID)
	params.Set("shopid", shopID)
	params.Set("item_id", itemID)
	params.Set("shop_id", shopID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTTP, err)
	}
	for k, v := range httputil.ShopeeAPIHeaders() {
		req.Header[k] = v
	}

	resp, err := httputil.DoWithRetry(f.client, req, f.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTTP, err)
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrHTTP, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrHTTP, resp.StatusCode)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrHTTP, err)
	}
	if env.hasError() {
		if env.ErrorMsg != "" {
			return nil, fmt.Errorf("%w: %s", ErrRemote, env.ErrorMsg)
		}
		return nil, fmt.Errorf("%w: %s", ErrRemote, env.Error)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: envelope has no data", ErrRemote)
	}

	return env.Data, nil
}
