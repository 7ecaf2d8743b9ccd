package api

import (
	"time"

	"github.com/samber/lo"
)

// dateLayout is the format used by Mollie for calendar dates.
const dateLayout = "2006-01-02"

// CreateCustomerRequest is the input used to create a customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/customers/create
type CreateCustomerRequest struct {
	// Name is the full name of the customer.
	Name string `validate:"required"`

	// Email is the email address of the customer.
	Email string `validate:"required,email"`

	// Locale is used to render the payment screens. It defaults to the locale configured in the client.
	Locale string

	// Metadata is stored along with the customer. It must be an object, a map or a slice.
	Metadata any
}

// Validate validates the current request.
func (r CreateCustomerRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateMetadata(r.Metadata)
}

// Params returns the request body sent to the Mollie API.
func (r CreateCustomerRequest) Params(defaultLocale string) map[string]any {
	params := map[string]any{
		"name":  r.Name,
		"email": r.Email,
	}
	if locale := pickLocale(r.Locale, defaultLocale); len(locale) > 0 {
		params["locale"] = locale
	}
	if r.Metadata != nil {
		params["metadata"] = r.Metadata
	}
	return params
}

// UpdateCustomerRequest is the input used to update a customer. Only non-nil fields are sent.
// Mollie docs: https://www.mollie.com/nl/docs/reference/customers/update
type UpdateCustomerRequest struct {
	// Name replaces the customer name. It can't be set to an empty string.
	Name *string

	// Email replaces the customer email. It can't be set to an empty string.
	Email *string `validate:"omitempty,email"`

	// Locale replaces the customer locale.
	Locale *string

	// Metadata replaces the customer metadata.
	Metadata any
}

// Validate validates the current request.
func (r UpdateCustomerRequest) Validate() error {
	if r.Name == nil && r.Email == nil && r.Locale == nil && r.Metadata == nil {
		return ErrNoArguments
	}
	if r.Name != nil && len(*r.Name) == 0 {
		return ErrEmptyName
	}
	if r.Email != nil && len(*r.Email) == 0 {
		return ErrEmptyEmail
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateMetadata(r.Metadata)
}

// Params returns the request body sent to the Mollie API.
func (r UpdateCustomerRequest) Params() map[string]any {
	params := make(map[string]any)
	if r.Name != nil {
		params["name"] = *r.Name
	}
	if r.Email != nil {
		params["email"] = *r.Email
	}
	if r.Locale != nil {
		params["locale"] = *r.Locale
	}
	if r.Metadata != nil {
		params["metadata"] = r.Metadata
	}
	return params
}

// CreatePaymentRequest is the input used to create a payment, either standalone or on behalf of a customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/payments/create
type CreatePaymentRequest struct {
	// Amount is the amount in EURO to charge.
	Amount float64

	// Description is shown to the consumer and on the bank statement.
	Description string `validate:"required"`

	// RedirectURL is where the consumer is sent after the payment process. Not needed for recurring payments.
	RedirectURL string

	// WebhookURL overrides the profile webhook for this payment only.
	WebhookURL string

	// Method forces a payment method. Leave empty to show the method selection screen.
	Method Method

	// MethodParams contains method specific parameters, only sent when Method is set.
	//	Example: {"issuer": "ideal_ABNANL2A"}
	MethodParams map[string]any

	// Metadata is stored along with the payment. It must be an object, a map or a slice.
	Metadata any

	// Locale presets the language of the payment screens. Unknown locales are dropped.
	Locale string

	// RecurringType marks the payment as the first or a recurring payment of a mandate.
	RecurringType RecurringType

	// MandateID selects the mandate to charge a recurring payment on.
	MandateID string
}

// Validate validates the current request.
func (r CreatePaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := r.RecurringType.Validate(); err != nil {
		return err
	}
	if len(r.RedirectURL) == 0 && r.RecurringType != RecurringTypeRecurring {
		return ErrInvalidURL
	}
	if len(r.RedirectURL) > 0 {
		if err := validateURL(r.RedirectURL); err != nil {
			return err
		}
	}
	if len(r.WebhookURL) > 0 {
		if err := validateURL(r.WebhookURL); err != nil {
			return err
		}
	}
	if len(r.Method) > 0 && !lo.Contains(Methods, r.Method) {
		return ErrInvalidMethod
	}
	return validateMetadata(r.Metadata)
}

// Params returns the request body sent to the Mollie API.
func (r CreatePaymentRequest) Params(defaultLocale string) map[string]any {
	params := map[string]any{
		"amount":      r.Amount,
		"description": r.Description,
	}
	if len(r.RedirectURL) > 0 {
		params["redirectUrl"] = r.RedirectURL
	}
	if len(r.WebhookURL) > 0 {
		params["webhookUrl"] = r.WebhookURL
	}
	if r.Metadata != nil {
		params["metadata"] = r.Metadata
	}
	if locale := pickLocale(r.Locale, defaultLocale); len(locale) > 0 {
		params["locale"] = locale
	}
	if len(r.RecurringType) > 0 {
		params["recurringType"] = string(r.RecurringType)
	}
	if len(r.MandateID) > 0 {
		params["mandateId"] = r.MandateID
	}
	if len(r.Method) > 0 {
		params["method"] = string(r.Method)
		for k, v := range r.MethodParams {
			params[k] = v
		}
	}
	return params
}

// CreateMandateRequest is the input used to create a direct debit mandate for a customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/mandates/create
type CreateMandateRequest struct {
	// Method is the payment method of the mandate. Only directdebit is supported and it's used by default.
	Method Method

	// ConsumerName is the account holder name.
	ConsumerName string `validate:"required"`

	// ConsumerAccount is the IBAN of the account holder.
	ConsumerAccount string `validate:"required"`

	// ConsumerBIC is the BIC of the account holder's bank.
	ConsumerBIC string

	// SignatureDate is the date the mandate was signed.
	SignatureDate *time.Time

	// MandateReference is a custom reference for the mandate.
	MandateReference string
}

// Validate validates the current request.
func (r CreateMandateRequest) Validate() error {
	if len(r.Method) > 0 && r.Method != MethodDirectDebit {
		return ErrInvalidMethod
	}
	return validateStruct(r)
}

// Params returns the request body sent to the Mollie API.
func (r CreateMandateRequest) Params() map[string]any {
	method := r.Method
	if len(method) == 0 {
		method = MethodDirectDebit
	}
	params := map[string]any{
		"method":          string(method),
		"consumerName":    r.ConsumerName,
		"consumerAccount": r.ConsumerAccount,
	}
	if len(r.ConsumerBIC) > 0 {
		params["consumerBic"] = r.ConsumerBIC
	}
	if r.SignatureDate != nil {
		params["signatureDate"] = r.SignatureDate.Format(dateLayout)
	}
	if len(r.MandateReference) > 0 {
		params["mandateReference"] = r.MandateReference
	}
	return params
}

// CreateSubscriptionRequest is the input used to create a subscription for a customer.
// Mollie docs: https://www.mollie.com/nl/docs/reference/subscriptions/create
type CreateSubscriptionRequest struct {
	// Amount is the constant amount in EURO charged with each subscription payment.
	Amount float64

	// Times is the total number of charges. Leave nil for an ongoing subscription.
	Times *int

	// Interval is the time between charges.
	//	Examples: "1 month", "14 days"
	Interval string `validate:"required"`

	// Description must be unique per customer. It's included in the payment description along with the
	// charge date.
	Description string `validate:"required"`

	// Method forces a payment method. Leave empty to use any valid mandate of the customer.
	Method Method

	// WebhookURL is called for every subscription payment.
	WebhookURL string

	// StartDate is the date of the first charge. Defaults to today.
	StartDate *time.Time
}

// Validate validates the current request.
func (r CreateSubscriptionRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.Times != nil && *r.Times < 1 {
		return ErrInvalidTimes
	}
	if len(r.Method) > 0 && !lo.Contains(SubscriptionMethods, r.Method) {
		return ErrInvalidMethod
	}
	if len(r.WebhookURL) > 0 {
		if err := validateURL(r.WebhookURL); err != nil {
			return err
		}
	}
	return validateStruct(r)
}

// Params returns the request body sent to the Mollie API.
func (r CreateSubscriptionRequest) Params() map[string]any {
	params := map[string]any{
		"amount":      r.Amount,
		"interval":    r.Interval,
		"description": r.Description,
	}
	if r.Times != nil {
		params["times"] = *r.Times
	}
	if len(r.Method) > 0 {
		params["method"] = string(r.Method)
	}
	if len(r.WebhookURL) > 0 {
		params["webhookUrl"] = r.WebhookURL
	}
	if r.StartDate != nil {
		params["startDate"] = r.StartDate.Format(dateLayout)
	}
	return params
}

// CreateRefundRequest is the input used to refund a payment.
// Mollie docs: https://www.mollie.com/nl/docs/reference/refunds/create
type CreateRefundRequest struct {
	// Amount is the amount in EURO to refund. Leave nil to refund the full amount.
	Amount *float64

	// Description is shown to the consumer on the bank statement.
	Description string
}

// Validate validates the current request.
func (r CreateRefundRequest) Validate() error {
	if r.Amount != nil && *r.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Params returns the request body sent to the Mollie API.
func (r CreateRefundRequest) Params() map[string]any {
	params := make(map[string]any)
	if r.Amount != nil {
		params["amount"] = *r.Amount
	}
	if len(r.Description) > 0 {
		params["description"] = r.Description
	}
	return params
}

// pickLocale returns the first supported locale of the given candidates, or an empty string so the
// consumer's browser language is used.
func pickLocale(candidates ...string) string {
	for _, locale := range candidates {
		if len(locale) > 0 {
			if lo.Contains(Locales, locale) {
				return locale
			}
			return ""
		}
	}
	return ""
}
