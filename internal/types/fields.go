package types

import (
	"bytes"
	"encoding/json"
)

// Extra holds JSON fields of a content record that the builder does not interpret.
// They are kept so CMS fields pass through to the bundle unchanged.
type Extra map[string]json.RawMessage

// splitExtra decodes data into a field map and removes the known keys.
func splitExtra(data []byte, known ...string) (Extra, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, key := range known {
		delete(fields, key)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return Extra(fields), nil
}

// mergeExtra marshals v and adds the extra fields that v does not already define.
func mergeExtra(v any, extra Extra) ([]byte, error) {
	data, err := marshalNoEscape(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for key, raw := range extra {
		if _, exists := fields[key]; !exists {
			fields[key] = raw
		}
	}
	return marshalNoEscape(fields)
}

// marshalNoEscape encodes v like json.Marshal but leaves <, > and & unescaped.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
