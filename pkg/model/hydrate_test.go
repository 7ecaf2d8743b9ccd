package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
)

func customerFixture() map[string]any {
	return map[string]any{
		"resource":            "customer",
		"id":                  "cst_test",
		"mode":                "test",
		"name":                "Customer",
		"email":               "customer@example.org",
		"locale":              "nl",
		"metadata":            `{"orderno":404}`,
		"recentlyUsedMethods": []any{"creditcard", "ideal"},
		"createdDatetime":     "2016-04-06T13:23:21.0Z",
	}
}

func TestHydrate_Customer(t *testing.T) {
	customer, err := Hydrate[Customer](customerFixture())
	require.NoError(t, err)

	assert.Equal(t, "cst_test", customer.ID)
	assert.Equal(t, "customer", customer.Kind())
	assert.Equal(t, "Customer", customer.Name)
	assert.Equal(t, "customer@example.org", customer.Email)
	assert.Equal(t, []string{"creditcard", "ideal"}, customer.RecentlyUsedMethods)
	assert.Equal(t, map[string]any{"orderno": float64(404)}, customer.Metadata)
	assert.Equal(t, int64(1459949001), customer.CreatedDatetime.Unix())
	assert.True(t, customer.CreatedDatetime.Equal(time.Date(2016, 4, 6, 13, 23, 21, 0, time.UTC)))
}

func TestHydrate_InputForms(t *testing.T) {
	pairs := []Pair{{Key: "id", Value: "ideal_TESTNL99"}, {Key: "name", Value: "TBM Bank"}}
	issuer, err := Hydrate[Issuer](pairs)
	require.NoError(t, err)
	assert.Equal(t, "ideal_TESTNL99", issuer.ID)
	assert.Equal(t, "TBM Bank", issuer.Name)

	issuer, err = Hydrate[Issuer]([]byte(`{"id":"ideal_TESTNL99","method":"ideal"}`))
	require.NoError(t, err)
	assert.Equal(t, "ideal", issuer.Method)

	issuer, err = Hydrate[Issuer](json.RawMessage(`{"id":"ideal_TESTNL99"}`))
	require.NoError(t, err)
	assert.Equal(t, "ideal_TESTNL99", issuer.ID)

	issuer, err = Hydrate[Issuer](RawRecord{"id": "ideal_TESTNL99"})
	require.NoError(t, err)
	assert.Equal(t, "ideal_TESTNL99", issuer.ID)
}

func TestHydrate_ArrayFormIsIndexed(t *testing.T) {
	raw, err := Normalize([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, RawRecord{"0": "a", "1": "b"}, raw)

	again, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, again)

	decoded, err := Normalize([]byte(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	_, err = Hydrate[Issuer]([]any{"a"})
	assert.ErrorIs(t, err, api.ErrUnknownField)
}

func TestHydrate_InvalidInput(t *testing.T) {
	for _, data := range []any{nil, 42, "cst_test", true, RawRecord(nil), map[string]any(nil)} {
		_, err := Hydrate[Customer](data)
		assert.ErrorIs(t, err, api.ErrInvalidArgument, "%v", data)
	}

	_, err := Hydrate[Customer]([]byte(`{"id":`))
	assert.ErrorIs(t, err, api.ErrInvalidFormat)

	_, err = Hydrate[Customer]([]byte(`"cst_test"`))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestHydrate_UnknownField(t *testing.T) {
	data := customerFixture()
	data["favouriteColor"] = "blue"

	_, err := Hydrate[Customer](data)
	require.ErrorIs(t, err, api.ErrUnknownField)

	var fieldErr *api.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "favouriteColor", fieldErr.Field)
	assert.Equal(t, "customer", fieldErr.Model)
}

func TestHydrate_Dates(t *testing.T) {
	mandate, err := Hydrate[Mandate](map[string]any{
		"signatureDate":   "2016-05-31",
		"createdDatetime": nil,
	})
	require.NoError(t, err)
	assert.True(t, mandate.SignatureDate.Equal(time.Date(2016, 5, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, mandate.CreatedDatetime.IsZero())

	_, err = Hydrate[Mandate](map[string]any{"createdDatetime": "yesterday"})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)

	_, err = Hydrate[Mandate](map[string]any{"createdDatetime": 1459949001})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)
}

func TestHydrate_Periods(t *testing.T) {
	payment, err := Hydrate[Payment](map[string]any{"expiryPeriod": "P12D"})
	require.NoError(t, err)
	require.NotNil(t, payment.ExpiryPeriod)
	assert.Equal(t, 12*24*time.Hour, payment.ExpiryPeriod.ToTimeDuration())

	payment, err = Hydrate[Payment](map[string]any{"expiryPeriod": ""})
	require.NoError(t, err)
	assert.Nil(t, payment.ExpiryPeriod)

	payment, err = Hydrate[Payment](map[string]any{"expiryPeriod": "PT1H30M"})
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, payment.ExpiryPeriod.ToTimeDuration())

	for _, period := range []string{"12 days", "P", "PT", "P1", "P1DT", "PXD", "P-1D"} {
		_, err = Hydrate[Payment](map[string]any{"expiryPeriod": period})
		assert.ErrorIs(t, err, api.ErrInvalidFormat, period)
	}
}

func TestHydrate_Metadata(t *testing.T) {
	payment, err := Hydrate[Payment](map[string]any{"metadata": []any{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, payment.Metadata)

	payment, err = Hydrate[Payment](map[string]any{"metadata": nil})
	require.NoError(t, err)
	assert.Nil(t, payment.Metadata)

	_, err = Hydrate[Payment](map[string]any{"metadata": `{"order_id":`})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)

	_, err = Hydrate[Payment](map[string]any{"metadata": 12})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)
}

func TestHydrate_Amounts(t *testing.T) {
	payment, err := Hydrate[Payment](map[string]any{
		"amount":          "10.00",
		"amountRefunded":  2,
		"amountRemaining": json.Number("8.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, payment.Amount)
	assert.Equal(t, 2.0, payment.AmountRefunded)
	assert.Equal(t, 8.5, payment.AmountRemaining)

	for _, amount := range []any{10.0, float32(10), 10, int8(10), int16(10), int32(10), int64(10), uint(10), uint8(10), uint16(10), uint32(10), uint64(10), "10", " 10.00 "} {
		payment, err = Hydrate[Payment](map[string]any{"amount": amount})
		require.NoError(t, err, "%T", amount)
		assert.Equal(t, 10.0, payment.Amount, "%T", amount)
	}

	for _, amount := range []any{"ten", "NaN", "Inf", "-Inf", true, []any{10}} {
		_, err = Hydrate[Payment](map[string]any{"amount": amount})
		assert.ErrorIs(t, err, api.ErrInvalidFormat, "%v", amount)
	}
}

func TestHydrate_WrongKind(t *testing.T) {
	_, err := Hydrate[Customer](map[string]any{"name": 12})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)

	_, err = Hydrate[Customer](map[string]any{"recentlyUsedMethods": "ideal"})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)

	_, err = Hydrate[Subscription](map[string]any{"times": 1.5})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)
}

func TestHydrate_DoesNotMutateInput(t *testing.T) {
	data := customerFixture()
	_, err := Hydrate[Customer](data)
	require.NoError(t, err)
	assert.Equal(t, customerFixture(), data)
}

func TestHydrate_IsDeterministic(t *testing.T) {
	first, err := Hydrate[Customer](customerFixture())
	require.NoError(t, err)
	second, err := Hydrate[Customer](customerFixture())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResponse_IsRetainedCopy(t *testing.T) {
	data := customerFixture()
	customer, err := Hydrate[Customer](data)
	require.NoError(t, err)

	assert.Equal(t, RawRecord(customerFixture()), customer.Response())

	data["name"] = "Changed"
	response := customer.Response()
	assert.Equal(t, "Customer", response.String("name"))
	assert.Equal(t, `{"orderno":404}`, response.String("metadata"))

	response["name"] = "Changed"
	assert.Equal(t, "Customer", customer.Response().String("name"))
}

func TestHydrate_RefundWithNestedPayment(t *testing.T) {
	refund, err := Hydrate[Refund](map[string]any{
		"id":     "re_4qqhO89gsT",
		"amount": "5.95",
		"status": "pending",
		"payment": map[string]any{
			"id":              "tr_WDqYK6vllg",
			"status":          "refunded",
			"amount":          "35.07",
			"createdDatetime": "2016-04-06T13:23:21.0Z",
		},
		"refundedDatetime": "2016-04-06T14:23:21.0Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.95, refund.Amount)
	assert.True(t, refund.IsPending())
	require.NotNil(t, refund.Payment)
	assert.Equal(t, "tr_WDqYK6vllg", refund.Payment.ID)
	assert.Equal(t, 35.07, refund.Payment.Amount)
	assert.True(t, refund.Payment.IsRefunded())

	refund, err = Hydrate[Refund](map[string]any{"payment": "tr_WDqYK6vllg"})
	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", refund.Payment.ID)

	_, err = Hydrate[Refund](map[string]any{"payment": map[string]any{"unknown": true}})
	var fieldErr *api.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "payment", fieldErr.Model)
	assert.ErrorIs(t, err, api.ErrUnknownField)
}

func TestHydrate_Method(t *testing.T) {
	method, err := Hydrate[Method](map[string]any{
		"resource":    "method",
		"id":          "ideal",
		"description": "iDEAL",
		"amount":      map[string]any{"minimum": "0.53", "maximum": "50000.00"},
		"image": map[string]any{
			"normal": "https://www.mollie.com/images/payscreen/methods/ideal.png",
			"bigger": "https://www.mollie.com/images/payscreen/methods/ideal@2x.png",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.53, method.MinimumAmount())
	assert.Equal(t, 50000.0, method.MaximumAmount())
	assert.Equal(t, `<img src="https://www.mollie.com/images/payscreen/methods/ideal.png" alt="iDEAL">`, method.Image("normal"))
	assert.Empty(t, method.Image("small"))

	_, err = Hydrate[Method](map[string]any{"amount": map[string]any{"minimum": "low"}})
	assert.ErrorIs(t, err, api.ErrInvalidFormat)
}

func TestHydrate_Subscription(t *testing.T) {
	subscription, err := Hydrate[Subscription](map[string]any{
		"id":        "sub_rVKGtNd6s3",
		"status":    "active",
		"amount":    "25.00",
		"times":     4,
		"interval":  "3 months",
		"method":    nil,
		"startDate": "2016-06-01",
		"links":     map[string]any{"webhookUrl": "https://example.org/payments/webhook"},
	})
	require.NoError(t, err)
	require.NotNil(t, subscription.Times)
	assert.Equal(t, 4, *subscription.Times)
	assert.Empty(t, subscription.Method)
	assert.True(t, subscription.IsActive())
	assert.Equal(t, "https://example.org/payments/webhook", subscription.Links["webhookUrl"])

	subscription, err = Hydrate[Subscription](map[string]any{"times": nil})
	require.NoError(t, err)
	assert.Nil(t, subscription.Times)
}

func TestPayment_Status(t *testing.T) {
	payment, err := Hydrate[Payment](map[string]any{
		"status":       "paid",
		"paidDatetime": "2016-04-06T13:23:21.0Z",
		"links":        map[string]any{"paymentUrl": "https://www.mollie.com/payscreen/select-method/7UhSN1zuXS"},
	})
	require.NoError(t, err)
	assert.True(t, payment.IsPaid())
	assert.False(t, payment.IsOpen())
	assert.Equal(t, "https://www.mollie.com/payscreen/select-method/7UhSN1zuXS", payment.PaymentURL())

	payment = &Payment{Status: PaymentStatusOpen}
	assert.True(t, payment.IsOpen())
	assert.False(t, payment.IsPaid())
	assert.Empty(t, payment.PaymentURL())
}

func TestMandate_Status(t *testing.T) {
	assert.True(t, (&Mandate{Status: MandateStatusValid}).IsValid())
	assert.True(t, (&Mandate{Status: MandateStatusInvalid}).IsInvalid())
	assert.False(t, (&Mandate{Status: MandateStatusPending}).IsValid())
}
