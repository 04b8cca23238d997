package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

// Keys of the persisted collections in the key-value store.
const (
	KeyUsers            = "spendy:users"
	KeySession          = "spendy:session"
	KeyTransactions     = "spendy:transactions"
	KeyCustomCategories = "spendy:categories:custom"
)

// loadList reads a JSON array stored under key. A missing key is an empty list.
func loadList[T any](ctx context.Context, kv ports.KeyValueStore, key string) ([]T, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, &domain.StorageError{Op: "get", Key: key, Err: err}
	}
	if !found || raw == "" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &domain.StorageError{Op: "decode", Key: key, Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// storeList rewrites the whole collection under key.
func storeList[T any](ctx context.Context, kv ports.KeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return &domain.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}
