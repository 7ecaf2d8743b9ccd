package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/samber/lo"
	"github.com/sosodev/duration"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
)

var (
	// datePattern matches fields holding an ISO 8601 date or date time.
	datePattern = regexp.MustCompile(`.+(Datetime|Date)$`)

	// periodPattern matches fields holding an ISO 8601 duration.
	periodPattern = regexp.MustCompile(`.+Period$`)

	// durationPattern matches an ISO 8601 duration with at least one designated component.
	//
	//	Example: P12D, PT1H30M, P1Y2M
	durationPattern = regexp.MustCompile(`^P(\d+([.,]\d+)?[YMWD])*(T(\d+([.,]\d+)?[HMS])+)?$`)
)

// errUndeclared is returned by Record.assign for fields the model doesn't declare.
var errUndeclared = errors.New("undeclared field")

// Record is implemented by every model that can be filled from a Mollie API response.
type Record interface {
	// Kind returns the name of the model.
	//
	//	Example: customer
	Kind() string

	// Response returns the raw response the model was filled with.
	Response() RawRecord

	assign(field string, value any) error
	setResponse(raw RawRecord)
}

// base holds the state shared by all models.
type base struct {
	response RawRecord
}

// Response returns a copy of the raw response the model was filled with, normalized to object form.
func (b *base) Response() RawRecord {
	if b.response == nil {
		return nil
	}
	return cloneObject(b.response)
}

func (b *base) setResponse(raw RawRecord) {
	b.response = raw
}

// Hydrate creates a new model of type T and fills it with data.
//
//	Example: customer, err := model.Hydrate[model.Customer](raw)
func Hydrate[T any, P interface {
	*T
	Record
}](data any) (P, error) {
	p := P(new(T))
	if err := Fill(p, data); err != nil {
		return nil, err
	}
	return p, nil
}

// HydrateAll creates one model of type T per raw record, keeping their order.
func HydrateAll[T any, P interface {
	*T
	Record
}](items []RawRecord) ([]P, error) {
	out := make([]P, 0, len(items))
	for _, item := range items {
		p, err := Hydrate[T, P](item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Fill assigns every field of data to dst, converting values based on the field name:
//   - fields ending in Date or Datetime are parsed as ISO 8601 date times.
//   - fields ending in Period are parsed as ISO 8601 durations.
//   - metadata is decoded when it's a JSON string and must be an object or array otherwise.
//   - fields containing amount become float64.
//
// Every field must be declared on dst, otherwise api.ErrUnknownField is returned. The raw response is kept
// on dst and can be read with Record.Response.
func Fill(dst Record, data any) error {
	raw, err := Normalize(data)
	if err != nil {
		return err
	}

	keys := lo.Keys(raw)
	sort.Strings(keys)

	for _, k := range keys {
		v, err := coerce(k, raw[k])
		if err != nil {
			return &api.FieldError{Model: dst.Kind(), Field: k, Value: raw[k], Err: api.ErrInvalidFormat, Reason: err.Error()}
		}
		if err = dst.assign(k, v); err != nil {
			var fieldErr *api.FieldError
			switch {
			case errors.Is(err, errUndeclared):
				return &api.FieldError{Model: dst.Kind(), Field: k, Value: raw[k], Err: api.ErrUnknownField}
			case errors.As(err, &fieldErr):
				return err
			default:
				return &api.FieldError{Model: dst.Kind(), Field: k, Value: raw[k], Err: api.ErrInvalidFormat, Reason: err.Error()}
			}
		}
	}

	dst.setResponse(raw)
	return nil
}

// coerce converts a raw value based on the name of its field.
func coerce(name string, value any) (any, error) {
	switch {
	case datePattern.MatchString(name):
		if isEmpty(value) {
			return time.Time{}, nil
		}
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("not a valid date/time string: %v", value)
		}
		t, err := parseTimestamp(s)
		if err != nil {
			return nil, fmt.Errorf("not a valid date/time string: %s", s)
		}
		return t, nil

	case periodPattern.MatchString(name):
		if isEmpty(value) {
			return (*duration.Duration)(nil), nil
		}
		s, ok := value.(string)
		if !ok || !strings.HasPrefix(s, "P") {
			return nil, fmt.Errorf("not a valid ISO 8601 duration string: %v", value)
		}
		d, err := duration.Parse(s)
		if err != nil || s == "P" || !durationPattern.MatchString(s) {
			return nil, fmt.Errorf("not a valid ISO 8601 duration string: %s", s)
		}
		return d, nil

	case name == "metadata":
		return coerceMetadata(value)

	case strings.Contains(name, "amount"):
		return coerceAmount(value)
	}
	return value, nil
}

func coerceMetadata(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, errors.New("not an object, array or valid JSON string")
		}
		return parsed, nil
	case map[string]any, RawRecord, []any:
		return cloneValue(v), nil
	}
	return nil, errors.New("not an object, array or valid JSON string")
}

// coerceAmount converts numbers and numeric strings to float64. Objects, such as the amount range of a
// payment method, have each of their members converted.
func coerceAmount(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, member := range v {
			f, err := coerceAmount(member)
			if err != nil {
				return nil, err
			}
			out[k] = f
		}
		return out, nil
	}
	return toFloat(value)
}

func parseTimestamp(s string) (time.Time, error) {
	dt, err := strfmt.ParseDateTime(s)
	if err == nil {
		return time.Time(dt), nil
	}
	if d, dateErr := time.Parse(strfmt.RFC3339FullDate, s); dateErr == nil {
		return d, nil
	}
	return time.Time{}, err
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return len(v) == 0
	}
	return false
}

func toFloat(value any) (float64, error) {
	f, err := numeric(value)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite numeric value: %v", value)
	}
	return f, nil
}

func numeric(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not a numeric value: %q", v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("not a numeric value: %v", value)
}

func toOptionalFloat(value any) (float64, error) {
	if value == nil {
		return 0, nil
	}
	return toFloat(value)
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}
	return "", fmt.Errorf("expected a string, got %T", value)
}

func toStrings(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of strings, got %T", value)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected a list of strings, got an item of type %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}

func toInt(value any) (*int, error) {
	if value == nil {
		return nil, nil
	}
	f, err := toFloat(value)
	if err != nil {
		return nil, err
	}
	if f != float64(int(f)) {
		return nil, fmt.Errorf("expected an integer, got %v", value)
	}
	i := int(f)
	return &i, nil
}

func toObject(value any) (map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case RawRecord:
		return v, nil
	}
	return nil, fmt.Errorf("expected an object, got %T", value)
}

func toTime(value any) (time.Time, error) {
	t, ok := value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("expected a date/time, got %T", value)
	}
	return t, nil
}

func toPeriod(value any) (*duration.Duration, error) {
	d, ok := value.(*duration.Duration)
	if !ok {
		return nil, fmt.Errorf("expected a duration, got %T", value)
	}
	return d, nil
}
