package adapter

import (
	"context"
	"fmt"
	"net/url"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// PageGetter fetches a single Mollie API resource.
type PageGetter interface {
	// Get performs a GET request on the given path. Path may either be relative to the API endpoint or an
	// absolute URL, such as the links returned by the API.
	Get(ctx context.Context, path string, params url.Values) (model.RawRecord, error)
}

// Requester performs requests against the Mollie API.
type Requester interface {
	PageGetter

	// GetAll returns the items of every page of a list resource.
	GetAll(ctx context.Context, path string) ([]model.RawRecord, error)

	// Post sends body encoded as JSON and returns the created or updated resource.
	Post(ctx context.Context, path string, body any) (model.RawRecord, error)

	// Delete removes or cancels a resource. It returns a nil record when the API answers with no content.
	Delete(ctx context.Context, path string) (model.RawRecord, error)
}

// Paginate fetches path and every page linked through links.next, returning the data items of all pages
// in order. Pages are fetched sequentially until a page has no next link. If any page fails, the items
// collected so far are discarded and the error is returned.
func Paginate(ctx context.Context, getter PageGetter, path string) ([]model.RawRecord, error) {
	var items []model.RawRecord
	for next := path; len(next) > 0; {
		page, err := getter.Get(ctx, next, nil)
		if err != nil {
			return nil, err
		}
		data, err := pageItems(page)
		if err != nil {
			return nil, err
		}
		items = append(items, data...)
		next = page.Object("links").String("next")
	}
	if items == nil {
		items = []model.RawRecord{}
	}
	return items, nil
}

// pageItems returns the data items of a page. Every list page carries a data array, even when empty.
func pageItems(page model.RawRecord) ([]model.RawRecord, error) {
	raw, ok := page["data"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: page has no data array", api.ErrInvalidFormat)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: page data should be an array, got %T", api.ErrInvalidFormat, raw)
	}
	items := make([]model.RawRecord, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: page item %d should be an object, got %T", api.ErrInvalidFormat, i, item)
		}
		items = append(items, obj)
	}
	return items, nil
}
