package api

import (
	"bytes"
	"encoding/json"
)

// DecodeList unmarshals a list payload that may arrive as a bare JSON array
// or as a {"data": [...]} wrapper; callers must accept either shape. A null,
// absent or malformed payload decodes to an empty slice rather than an
// error, so a bad response never breaks the render path.
func DecodeList[T any](raw json.RawMessage) []T {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}
	}

	if trimmed[0] == '{' {
		var wrapper struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return []T{}
		}
		return DecodeList[T](wrapper.Data)
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// DecodeObject unmarshals a single-object payload. A JSON null reports
// ok=false, the explicit "no record" marker some endpoints return.
func DecodeObject[T any](raw json.RawMessage) (T, bool, error) {
	var zero T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return zero, false, nil
	}
	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return zero, false, err
	}
	return out, true, nil
}
