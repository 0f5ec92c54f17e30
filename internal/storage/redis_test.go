package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a Redis store backed by it.
func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client), mr
}

func TestRedis_SetGet(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "click-mart-cart", []byte(`{"items":[]}`)))

	got, err := store.Get(ctx, "click-mart-cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), got)

	// No TTL: slots are durable.
	assert.Equal(t, int64(0), int64(mr.TTL("click-mart-cart")))
}

func TestRedis_GetMissing(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_Delete(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	mr.Set("click-mart-cart", "v1")

	require.NoError(t, store.Delete(ctx, "click-mart-cart"))
	assert.False(t, mr.Exists("click-mart-cart"))

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "click-mart-cart"))
}
