package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
)

// RawRecord is a JSON object exactly as returned by the Mollie API.
type RawRecord map[string]any

// Pair is a single key/value entry of a raw record. A slice of pairs is accepted wherever a RawRecord is.
type Pair struct {
	Key   string
	Value any
}

// String returns the value of the given key if it's a string.
func (r RawRecord) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Object returns the value of the given key if it's a JSON object.
func (r RawRecord) Object(key string) RawRecord {
	switch v := r[key].(type) {
	case RawRecord:
		return v
	case map[string]any:
		return v
	}
	return nil
}

// Normalize converts the supported input forms into a RawRecord. The result is a deep copy, later changes
// to data are not reflected on it.
//
// Supported forms are RawRecord, map[string]any, []any (keys become the element indexes), []Pair and JSON
// encoded objects or arrays ([]byte, json.RawMessage).
func Normalize(data any) (RawRecord, error) {
	switch v := data.(type) {
	case RawRecord:
		if v == nil {
			return nil, fmt.Errorf("%w: model data should be an object, array or a list of pairs, got a nil record", api.ErrInvalidArgument)
		}
		return cloneObject(v), nil
	case map[string]any:
		if v == nil {
			return nil, fmt.Errorf("%w: model data should be an object, array or a list of pairs, got a nil map", api.ErrInvalidArgument)
		}
		return cloneObject(v), nil
	case []any:
		r := make(RawRecord, len(v))
		for i, item := range v {
			r[strconv.Itoa(i)] = cloneValue(item)
		}
		return r, nil
	case []Pair:
		r := make(RawRecord, len(v))
		for _, p := range v {
			r[p.Key] = cloneValue(p.Value)
		}
		return r, nil
	case json.RawMessage:
		return decodeRecord(v)
	case []byte:
		return decodeRecord(v)
	case nil:
		return nil, fmt.Errorf("%w: model data should be an object, array or a list of pairs, got nil", api.ErrInvalidArgument)
	}
	return nil, fmt.Errorf("%w: model data should be an object, array or a list of pairs, got %T", api.ErrInvalidArgument, data)
}

// decodeRecord decodes a JSON document and normalizes the result.
func decodeRecord(b []byte) (RawRecord, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%w: %s", api.ErrInvalidFormat, err.Error())
	}
	switch v.(type) {
	case map[string]any, []any:
		return Normalize(v)
	}
	return nil, fmt.Errorf("%w: model data should be a JSON object or array, got %T", api.ErrInvalidArgument, v)
}

func cloneObject(m map[string]any) RawRecord {
	r := make(RawRecord, len(m))
	for k, v := range m {
		r[k] = cloneValue(v)
	}
	return r
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case RawRecord:
		return map[string]any(cloneObject(t))
	case map[string]any:
		return map[string]any(cloneObject(t))
	case []any:
		s := make([]any, len(t))
		for i, item := range t {
			s[i] = cloneValue(item)
		}
		return s
	}
	return v
}
