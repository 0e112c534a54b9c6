package storage

import (
	"encoding/json"
	"fmt"
)

// PutJSON stores a JSON-encoded value under key
func PutJSON(b Backend, bucket []byte, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return b.Put(bucket, []byte(key), data)
}

// GetJSON decodes the value under key into v. It reports false when the key
// does not exist and leaves v untouched.
func GetJSON(b Backend, bucket []byte, key string, v any) (bool, error) {
	data, err := b.Get(bucket, []byte(key))
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return true, nil
}
