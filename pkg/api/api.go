package api

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a caller supplied a value of the wrong shape or type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFormat is returned when a value has the right kind but fails semantic parsing, such as
	// a malformed ISO 8601 date, duration or JSON string.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrUnknownField is returned when a response contains a field that is not declared on the model.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingIdentifier is returned when an operation needs a resource ID and none was given, either
	// as an argument or through the resource scope.
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrTypeMismatch is returned when a resource reference is neither a model of the expected type nor
	// an ID string.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrRequestFailed is returned when the Mollie API answers with an unexpected HTTP status.
	ErrRequestFailed = errors.New("request failed")

	// ErrInvalidAPIKey is returned when the API key doesn't look like a live_ or test_ key.
	ErrInvalidAPIKey = fmt.Errorf("%w: invalid Mollie API key", ErrInvalidArgument)

	// ErrMissingAPIKey is returned when no API key has been configured.
	ErrMissingAPIKey = fmt.Errorf("%w: no API key entered", ErrInvalidArgument)

	// ErrInvalidEndpoint is returned when the API endpoint is not an http or https URL.
	ErrInvalidEndpoint = fmt.Errorf("%w: invalid Mollie API endpoint", ErrInvalidArgument)

	// ErrInvalidMetadata is returned when metadata is neither an object nor an array.
	ErrInvalidMetadata = fmt.Errorf("%w: metadata argument must be of type array or object", ErrInvalidArgument)

	// ErrNoArguments is returned when an update request doesn't change anything.
	ErrNoArguments = fmt.Errorf("%w: no arguments supplied", ErrInvalidArgument)

	// ErrEmptyName is returned when a name is explicitly set to an empty string.
	ErrEmptyName = fmt.Errorf("%w: name argument can't be an empty string", ErrInvalidArgument)

	// ErrEmptyEmail is returned when an email is explicitly set to an empty string.
	ErrEmptyEmail = fmt.Errorf("%w: email argument can't be an empty string", ErrInvalidArgument)

	// ErrInvalidMethod is returned when a payment method is not supported by the requested operation.
	ErrInvalidMethod = fmt.Errorf("%w: invalid payment method", ErrInvalidArgument)

	// ErrInvalidRecurringType is returned when a recurring type is not "first" or "recurring".
	ErrInvalidRecurringType = fmt.Errorf("%w: recurring type must be 'first' or 'recurring'", ErrInvalidArgument)

	// ErrInvalidTimes is returned when the number of subscription charges is lower than 1.
	ErrInvalidTimes = fmt.Errorf("%w: number of charges must be 1 or more, or nil for an ongoing subscription", ErrInvalidArgument)

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)

	// ErrEmptyPaymentID is returned when a webhook call doesn't name a payment.
	ErrEmptyPaymentID = fmt.Errorf("%w: empty payment id", ErrInvalidArgument)
)

// Method identifies a Mollie payment method.
type Method string

const (
	MethodIDeal             Method = "ideal"
	MethodCreditCard        Method = "creditcard"
	MethodMisterCash        Method = "mistercash"
	MethodSofort            Method = "sofort"
	MethodBankTransfer      Method = "banktransfer"
	MethodDirectDebit       Method = "directdebit"
	MethodBelfius           Method = "belfius"
	MethodPayPal            Method = "paypal"
	MethodBitcoin           Method = "bitcoin"
	MethodPodiumCadeaukaart Method = "podiumcadeaukaart"
	MethodPaysafecard       Method = "paysafecard"
)

// Methods lists every payment method accepted when creating a payment.
var Methods = []Method{
	MethodIDeal,
	MethodCreditCard,
	MethodMisterCash,
	MethodSofort,
	MethodBankTransfer,
	MethodDirectDebit,
	MethodBelfius,
	MethodPayPal,
	MethodBitcoin,
	MethodPodiumCadeaukaart,
	MethodPaysafecard,
}

// SubscriptionMethods lists the payment methods a subscription can be forced to use.
var SubscriptionMethods = []Method{MethodCreditCard, MethodDirectDebit}

// Locales lists the locales accepted by the Mollie payment screens.
var Locales = []string{"de", "en", "es", "fr", "be", "be-fr", "nl"}

// RecurringType identifies the position of a payment in a recurring sequence.
type RecurringType string

const (
	// RecurringTypeFirst is used for the first payment that establishes a mandate.
	RecurringTypeFirst RecurringType = "first"
	// RecurringTypeRecurring is used for payments charged on an existing mandate.
	RecurringTypeRecurring RecurringType = "recurring"
)

// Validate validates the current recurring type. An empty value is valid.
func (rt RecurringType) Validate() error {
	switch rt {
	case "", RecurringTypeFirst, RecurringTypeRecurring:
		return nil
	}
	return ErrInvalidRecurringType
}

// PaymentNotifierV1 contains the methods called after Mollie notifies a payment status change.
// Mollie calls the webhook URL of a payment with the payment ID only, the current state must be fetched
// from the API.
type PaymentNotifierV1 interface {
	// ProcessPaymentWebhook fetches the payment named by the webhook call and processes its status.
	ProcessPaymentWebhook(ctx context.Context, req PaymentWebhookRequest) (PaymentWebhookResponse, error)
}

// PaymentWebhookRequest is the input for the PaymentNotifierV1.ProcessPaymentWebhook method.
type PaymentWebhookRequest struct {
	// ID is the Mollie payment ID sent in the webhook body.
	//	Example: tr_7UhSN1zuXS
	ID string `validate:"required"`
}

// Validate validates the current request.
func (r PaymentWebhookRequest) Validate() error {
	if len(r.ID) == 0 {
		return ErrEmptyPaymentID
	}
	return nil
}

// PaymentWebhookResponse is the output of the PaymentNotifierV1.ProcessPaymentWebhook method.
type PaymentWebhookResponse struct {
	// ID is the ID of the processed payment.
	ID string

	// Status is the status the payment had when it was fetched.
	Status string
}
