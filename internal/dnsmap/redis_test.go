package dnsmap

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisMapper, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisMapper(client), mr
}

func TestRedisMapper_UpsertAndLookup(t *testing.T) {
	mapper, _ := setupTestRedis(t)
	ctx := context.Background()

	err := mapper.Upsert(ctx, "my-cafe.example.com", "d123.amplifyapp.com")
	require.NoError(t, err)

	target, err := mapper.Lookup(ctx, "my-cafe.example.com")
	require.NoError(t, err)
	assert.Equal(t, "d123.amplifyapp.com", target)
}

func TestRedisMapper_UpsertOverwrites(t *testing.T) {
	mapper, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mapper.Upsert(ctx, "my-cafe.example.com", "old.amplifyapp.com"))
	require.NoError(t, mapper.Upsert(ctx, "my-cafe.example.com", "new.amplifyapp.com"))

	target, err := mapper.Lookup(ctx, "my-cafe.example.com")
	require.NoError(t, err)

	// Last write wins; no duplicate entry is possible with a single key.
	assert.Equal(t, "new.amplifyapp.com", target)
}

func TestRedisMapper_Delete(t *testing.T) {
	mapper, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mapper.Upsert(ctx, "my-cafe.example.com", "d123.amplifyapp.com"))
	require.NoError(t, mapper.Delete(ctx, "my-cafe.example.com", "d123.amplifyapp.com"))

	target, err := mapper.Lookup(ctx, "my-cafe.example.com")
	require.NoError(t, err)
	assert.Empty(t, target)
	assert.False(t, mr.Exists("subsite:map:my-cafe.example.com"))
}

func TestRedisMapper_LookupUnmapped(t *testing.T) {
	mapper, _ := setupTestRedis(t)

	target, err := mapper.Lookup(context.Background(), "nobody.example.com")
	require.NoError(t, err)
	assert.Empty(t, target)
}
