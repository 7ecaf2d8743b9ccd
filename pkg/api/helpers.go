package api

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidURL is returned when a callback URL is not a well-formed absolute URL.
var ErrInvalidURL = fmt.Errorf("%w: invalid URL", ErrInvalidArgument)

// validate holds the struct validator shared by every request type. It caches struct metadata and is
// safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the validate tags of the given request.
func validateStruct(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, err.Error())
	}
	return nil
}

// validateURL validates if a raw URL string is well-formed or not.
func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, err.Error())
	}
	if u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// validateMetadata checks that metadata is either nil, an object or an array.
func validateMetadata(metadata any) error {
	if metadata == nil {
		return nil
	}
	v := reflect.ValueOf(metadata)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return nil
	}
	return ErrInvalidMetadata
}
