package fake

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/adapter"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

var _ adapter.Requester = (*Requester)(nil)

// Requester is a fake implementation of adapter.Requester.
type Requester struct {
	mock.Mock
}

// NewRequester initializes a new fake Requester.
func NewRequester() *Requester {
	return &Requester{}
}

// Get mocks a Get call.
func (r *Requester) Get(ctx context.Context, path string, params url.Values) (model.RawRecord, error) {
	args := r.Called(ctx, path, params)
	res, _ := args.Get(0).(model.RawRecord)
	return res, args.Error(1)
}

// GetAll mocks a GetAll call.
func (r *Requester) GetAll(ctx context.Context, path string) ([]model.RawRecord, error) {
	args := r.Called(ctx, path)
	res, _ := args.Get(0).([]model.RawRecord)
	return res, args.Error(1)
}

// Post mocks a Post call.
func (r *Requester) Post(ctx context.Context, path string, body any) (model.RawRecord, error) {
	args := r.Called(ctx, path, body)
	res, _ := args.Get(0).(model.RawRecord)
	return res, args.Error(1)
}

// Delete mocks a Delete call.
func (r *Requester) Delete(ctx context.Context, path string) (model.RawRecord, error) {
	args := r.Called(ctx, path)
	res, _ := args.Get(0).(model.RawRecord)
	return res, args.Error(1)
}
