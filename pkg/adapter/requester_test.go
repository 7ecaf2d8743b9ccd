package adapter

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

// pages is a PageGetter serving fixed pages by path.
type pages struct {
	byPath map[string]model.RawRecord
	calls  []string
}

func (p *pages) Get(_ context.Context, path string, _ url.Values) (model.RawRecord, error) {
	p.calls = append(p.calls, path)
	page, ok := p.byPath[path]
	if !ok {
		return nil, &api.RequestError{Message: "Mollie API GET request failed", StatusCode: 404, URL: path}
	}
	return page, nil
}

func page(next any, ids ...string) model.RawRecord {
	data := make([]any, 0, len(ids))
	for _, id := range ids {
		data = append(data, map[string]any{"id": id})
	}
	return model.RawRecord{
		"totalCount": 99,
		"offset":     0,
		"count":      len(ids),
		"data":       data,
		"links":      map[string]any{"next": next},
	}
}

func TestPaginate_FollowsNextLinks(t *testing.T) {
	getter := &pages{byPath: map[string]model.RawRecord{
		"payments":          page("payments?offset=2", "tr_1", "tr_2"),
		"payments?offset=2": page("payments?offset=4", "tr_3", "tr_4"),
		"payments?offset=4": page(nil, "tr_5"),
	}}

	items, err := Paginate(context.Background(), getter, "payments")
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, id := range []string{"tr_1", "tr_2", "tr_3", "tr_4", "tr_5"} {
		assert.Equal(t, id, items[i].String("id"))
	}
	assert.Equal(t, []string{"payments", "payments?offset=2", "payments?offset=4"}, getter.calls)
}

func TestPaginate_StopsOnEmptyNextLink(t *testing.T) {
	for _, last := range []model.RawRecord{
		page("", "tr_1"),
		page(nil, "tr_1"),
		{"data": []any{map[string]any{"id": "tr_1"}}},
		{"data": []any{map[string]any{"id": "tr_1"}}, "links": nil},
	} {
		getter := &pages{byPath: map[string]model.RawRecord{"payments": last}}
		items, err := Paginate(context.Background(), getter, "payments")
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Len(t, getter.calls, 1)
	}
}

func TestPaginate_EmptyList(t *testing.T) {
	getter := &pages{byPath: map[string]model.RawRecord{"refunds": page(nil)}}
	items, err := Paginate(context.Background(), getter, "refunds")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPaginate_DiscardsItemsOnFailure(t *testing.T) {
	getter := &pages{byPath: map[string]model.RawRecord{
		"payments": page("payments?offset=2", "tr_1", "tr_2"),
	}}

	items, err := Paginate(context.Background(), getter, "payments")
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, api.ErrRequestFailed))
}

func TestPaginate_InvalidItems(t *testing.T) {
	getter := &pages{byPath: map[string]model.RawRecord{
		"payments": {"data": []any{map[string]any{"id": "tr_1"}, "tr_2"}},
	}}
	_, err := Paginate(context.Background(), getter, "payments")
	assert.ErrorIs(t, err, api.ErrInvalidFormat)

	getter = &pages{byPath: map[string]model.RawRecord{
		"payments": {"data": "tr_1"},
	}}
	_, err = Paginate(context.Background(), getter, "payments")
	assert.ErrorIs(t, err, api.ErrInvalidFormat)
}

func TestPaginate_MissingData(t *testing.T) {
	for _, first := range []model.RawRecord{
		{"count": 0, "links": map[string]any{"next": "payments?offset=2"}},
		{"data": nil, "links": map[string]any{"next": "payments?offset=2"}},
		nil,
	} {
		getter := &pages{byPath: map[string]model.RawRecord{
			"payments":          first,
			"payments?offset=2": page(nil, "tr_3"),
		}}
		items, err := Paginate(context.Background(), getter, "payments")
		assert.ErrorIs(t, err, api.ErrInvalidFormat)
		assert.Nil(t, items)
		assert.Equal(t, []string{"payments"}, getter.calls)
	}
}
