package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only when SPENDY_TEST_REDIS_ADDR points at a disposable Redis.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("SPENDY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SPENDY_TEST_REDIS_ADDR not set")
	}
	store, err := Open(context.Background(), Config{Addr: addr, DB: 15})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	key := "spendy:test:" + t.Name()

	_, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, key, "[]"))
	value, found, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)

	require.NoError(t, store.Remove(ctx, key))
	require.NoError(t, store.Remove(ctx, key))
	_, found, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Ping(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
