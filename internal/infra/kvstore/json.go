package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON reads key and decodes it into dst.
// It returns ErrNotFound untouched so callers can fall back to defaults.
func GetJSON(ctx context.Context, s Store, key string, dst interface{}) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrDecode, key, err)
	}
	return nil
}

// SetJSON encodes value and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrEncode, key, err)
	}
	return s.Set(ctx, key, data)
}
