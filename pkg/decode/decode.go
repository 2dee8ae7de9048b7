// Package decode converts between untyped document maps and typed structs
// using their JSON representation.
package decode

import (
	"encoding/json"
	"fmt"
)

// FromMap decodes a document map into T.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// ToMap encodes v as a document map. v must encode to a JSON object.
func ToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, fmt.Errorf("value is not an object: %w", err)
	}
	return result, nil
}
