// Package encoding provides utilities for encoding and decoding data.
package encoding

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// api is the standard-library compatible sonic configuration: sorted map
// keys, escaped HTML and validated strings, so the bytes it writes match
// what encoding/json would produce.
var api = sonic.ConfigStd

// LoadJSON reads a JSON file and unmarshals it into the provided value.
// Returns nil, nil if the file does not exist.
// Returns an error for other file access or parsing issues.
func LoadJSON[T any](path string) (*T, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	var result T
	if err := api.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from %s: %w", path, err)
	}

	return &result, nil
}

// SaveJSON marshals the value to indented JSON and writes it to the
// specified path with 0600 permissions.
// Creates parent directories if they don't exist.
func SaveJSON[T any](path string, value T) error {
	data, err := api.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return WriteFile(path, append(data, '\n'), 0o600)
}

// ParseJSON unmarshals JSON data into the provided type.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := api.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}

// ToJSON marshals a value to JSON bytes.
func ToJSON[T any](value T) ([]byte, error) {
	return api.Marshal(value)
}

