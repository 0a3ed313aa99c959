package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mem "tripmigo/pkg/memcache"
	"tripmigo/pkg/utils"
)

// getJSON decodes key into out. It reports false when the key is absent.
func getJSON(ctx context.Context, store mem.Store, key string, out any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, mem.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrStoreError, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", utils.ErrStoreError, key, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, store mem.Store, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", utils.ErrStoreError, key, err)
	}
	if err := store.Set(ctx, key, raw, ttl); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStoreError, err)
	}
	return nil
}

func deleteKey(ctx context.Context, store mem.Store, key string) error {
	if err := store.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStoreError, err)
	}
	return nil
}
