package shopee

import "errors"

// Error kinds for a single price check. Each one fails only its own unit of
// work: the dispatch pool converts them to an absent price for that row.
var (
	// ErrInvalidURL means the URL host does not belong to the marketplace.
	ErrInvalidURL = errors.New("not a valid Shopee URL")

	// ErrIDNotFound means neither the path pattern nor the query parameters
	// yielded a shop id and item id.
	ErrIDNotFound = errors.New("could not extract shop and item ids")

	// ErrHTTP covers transport failures and non-success statuses from the
	// item API.
	ErrHTTP = errors.New("item API request failed")

	// ErrRemote means the item API envelope reported a non-null error.
	ErrRemote = errors.New("item API returned an error")

	// ErrNoModels means the fetched record has an empty model list.
	ErrNoModels = errors.New("no models in product record")

	// ErrIndexOutOfRange means a resolved model index fell outside the model
	// list. The resolver never produces this; it guards against corrupt
	// records.
	ErrIndexOutOfRange = errors.New("model index out of range")

	// ErrTierIndexMismatch means a model's tier index length does not match
	// the record's variation axes. Such models are an error when matched
	// against, not a silent skip.
	ErrTierIndexMismatch = errors.New("model tier index does not match variation axes")
)
