package api

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a response field that couldn't be assigned to a model.
type FieldError struct {
	// Model is the name of the model being filled.
	//	Example: customer
	Model string

	// Field is the name of the offending response field.
	Field string

	// Value is the raw value of the field.
	Value any

	// Err is one of ErrInvalidFormat or ErrUnknownField.
	Err error

	// Reason optionally explains why the value was rejected.
	Reason string
}

// Error returns the string representation of the field error.
func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrUnknownField) {
		return fmt.Sprintf("property %s is not a member of the %s model", e.Field, e.Model)
	}
	msg := fmt.Sprintf("property %s of the %s model: %v", e.Field, e.Model, e.Err)
	if len(e.Reason) > 0 {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// RequestError is returned when the Mollie API answers with an unexpected status code.
type RequestError struct {
	// Message describes the failed operation.
	//	Example: Mollie API GET request failed
	Message string

	// StatusCode is the HTTP status code of the response. It's zero when no response was received.
	StatusCode int

	// URL is the requested URL.
	URL string

	// Body is the decoded error body, if any.
	Body map[string]any

	// Err is the transport error, if any.
	Err error
}

// UpstreamMessage returns the error message sent by the Mollie API in the response body, if present.
func (e *RequestError) UpstreamMessage() string {
	if e.Body == nil {
		return ""
	}
	errBody, ok := e.Body["error"].(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := errBody["message"].(string)
	return msg
}

// Error returns the string representation of the request error.
//
//	Example: [404][https://api.mollie.nl/v1/customers/cst_test]: Mollie API GET request failed: The customer id is invalid.
func (e *RequestError) Error() string {
	var b strings.Builder
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, "[%d]", e.StatusCode)
	}
	if len(e.URL) > 0 {
		fmt.Fprintf(&b, "[%s]: ", e.URL)
	}
	b.WriteString(e.Message)
	if msg := e.UpstreamMessage(); len(msg) > 0 {
		fmt.Fprintf(&b, ": %s.", strings.TrimSuffix(msg, "."))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports ErrRequestFailed as a match.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}
