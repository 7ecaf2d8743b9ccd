package application

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/client"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/fake"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
)

type serviceTestSuite struct {
	suite.Suite
	Requester *fake.Requester
	Received  []*model.Payment
	Listener  Listener
	Service   Service
}

func TestWebhookService(t *testing.T) {
	suite.Run(t, new(serviceTestSuite))
}

func (s *serviceTestSuite) SetupTest() {
	s.Requester = fake.NewRequester()
	s.Received = nil
	s.Listener = ListenerFunc(func(ctx context.Context, payment *model.Payment) error {
		s.Received = append(s.Received, payment)
		return nil
	})

	c, err := client.NewClient(client.Options{Requester: s.Requester})
	s.Require().NoError(err)

	s.Service = NewWebhookService(Options{
		Payments: c.Payments(),
		Listener: s.Listener,
		Timeout:  200 * time.Millisecond,
	})
}

func (s *serviceTestSuite) TestEmptyPaymentID() {
	_, err := s.Service.ProcessPaymentWebhook(context.Background(), api.PaymentWebhookRequest{})
	s.Assert().ErrorIs(err, api.ErrEmptyPaymentID)
	s.Assert().ErrorIs(err, api.ErrInvalidArgument)
	s.Requester.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (s *serviceTestSuite) TestPaymentProcessed() {
	ctx := mock.AnythingOfType("*context.timerCtx")
	s.Requester.On("Get", ctx, "payments/tr_test", url.Values(nil)).Return(model.RawRecord{
		"id":           "tr_test",
		"status":       "paid",
		"amount":       "10.00",
		"paidDatetime": "2016-04-06T13:23:21.0Z",
	}, error(nil))

	res, err := s.Service.ProcessPaymentWebhook(context.Background(), api.PaymentWebhookRequest{ID: "tr_test"})
	s.Require().NoError(err)
	s.Assert().Equal(api.PaymentWebhookResponse{ID: "tr_test", Status: "paid"}, res)
	s.Require().Len(s.Received, 1)
	s.Assert().True(s.Received[0].IsPaid())
}

func (s *serviceTestSuite) TestPaymentNotFound() {
	failure := &api.RequestError{Message: "Mollie API GET request failed", StatusCode: 404}
	s.Requester.On("Get", mock.Anything, "payments/tr_missing", url.Values(nil)).Return(nil, failure)

	_, err := s.Service.ProcessPaymentWebhook(context.Background(), api.PaymentWebhookRequest{ID: "tr_missing"})
	s.Assert().ErrorIs(err, api.ErrRequestFailed)
	s.Assert().Empty(s.Received)
}

func (s *serviceTestSuite) TestListenerFails() {
	failure := errors.New("order not found")
	service := NewWebhookService(Options{
		Payments: paymentsFunc(func(ctx context.Context, ref any) (*model.Payment, error) {
			return &model.Payment{ID: "tr_test", Status: model.PaymentStatusOpen}, nil
		}),
		Listener: ListenerFunc(func(ctx context.Context, payment *model.Payment) error {
			return failure
		}),
	})

	_, err := service.ProcessPaymentWebhook(context.Background(), api.PaymentWebhookRequest{ID: "tr_test"})
	s.Assert().ErrorIs(err, failure)
}

func (s *serviceTestSuite) TestTimeout() {
	service := NewWebhookService(Options{
		Payments: paymentsFunc(func(ctx context.Context, ref any) (*model.Payment, error) {
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			return nil, ctx.Err()
		}),
		Timeout: 20 * time.Millisecond,
	})

	_, err := service.ProcessPaymentWebhook(context.Background(), api.PaymentWebhookRequest{ID: "tr_test"})
	s.Assert().ErrorIs(err, context.DeadlineExceeded)
}

func (s *serviceTestSuite) TestWithoutListener() {
	service := NewWebhookService(Options{
		Payments: paymentsFunc(func(ctx context.Context, ref any) (*model.Payment, error) {
			return &model.Payment{ID: "tr_test", Status: model.PaymentStatusExpired}, nil
		}),
	})

	res, err := service.ProcessPaymentWebhook(context.Background(), api.PaymentWebhookRequest{ID: "tr_test"})
	s.Require().NoError(err)
	s.Assert().Equal("expired", res.Status)
}

type paymentsFunc func(ctx context.Context, ref any) (*model.Payment, error)

func (f paymentsFunc) Get(ctx context.Context, ref any) (*model.Payment, error) {
	return f(ctx, ref)
}
