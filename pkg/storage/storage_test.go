package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adapterRoundTrip(t *testing.T, adapter Adapter) {
	t.Helper()
	ctx := context.Background()

	_, err := adapter.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, adapter.Set(ctx, "console:abc:tenant_id", "42"))
	value, err := adapter.Get(ctx, "console:abc:tenant_id")
	require.NoError(t, err)
	assert.Equal(t, "42", value)

	require.NoError(t, adapter.Set(ctx, "console:abc:tenant_id", "43"))
	value, err = adapter.Get(ctx, "console:abc:tenant_id")
	require.NoError(t, err)
	assert.Equal(t, "43", value)

	require.NoError(t, adapter.Delete(ctx, "console:abc:tenant_id"))
	_, err = adapter.Get(ctx, "console:abc:tenant_id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryAdapter(t *testing.T) {
	adapter := NewMemory()
	defer adapter.Close()

	adapterRoundTrip(t, adapter)
}

func TestRedisAdapter(t *testing.T) {
	server := miniredis.RunT(t)

	adapter := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	defer adapter.Close()

	adapterRoundTrip(t, adapter)
}

func TestFromEnvDefaultsToMemory(t *testing.T) {
	adapter, err := FromEnv("")
	require.NoError(t, err)
	defer adapter.Close()

	adapterRoundTrip(t, adapter)
}

func TestFromEnvRejectsUnknownKind(t *testing.T) {
	_, err := FromEnv("etcd")
	assert.Error(t, err)
}
