package v1

import (
	"bytes"
	"encoding/json"
)

// The backend is inconsistent about envelopes: the same logical endpoint may
// answer with a bare array or with {"data": [...]}. Everything downstream of
// these two helpers only ever sees plain values.

// DecodeList accepts a bare JSON array, an object with an array-valued "data"
// field, or an empty body (HTTP 204), and returns the items.
func DecodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, ErrUnexpectedShape
		}
		return items, nil
	}

	if trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, ErrUnexpectedShape
		}
		inner := bytes.TrimSpace(env.Data)
		if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
			return []T{}, nil
		}
		if inner[0] != '[' {
			return nil, ErrUnexpectedShape
		}
		var items []T
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, ErrUnexpectedShape
		}
		return items, nil
	}

	return nil, ErrUnexpectedShape
}

// DecodeObject accepts a bare JSON object or an object wrapped in a "data"
// field.
func DecodeObject[T any](data []byte) (*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrUnexpectedShape
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &env); err == nil {
		inner := bytes.TrimSpace(env.Data)
		if len(inner) > 0 && inner[0] == '{' {
			trimmed = inner
		}
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, ErrUnexpectedShape
	}
	return &out, nil
}
