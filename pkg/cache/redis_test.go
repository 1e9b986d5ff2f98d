package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "triggers:1:won", `{"id":3}`, 1*time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "triggers:1:won")
	require.NoError(t, err)
	assert.Equal(t, `{"id":3}`, val)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "triggers:1:won", "a", 1*time.Minute)
	_ = client.Set(ctx, "triggers:1:lost", "b", 1*time.Minute)

	err := client.Delete(ctx, "triggers:1:won")
	require.NoError(t, err)

	_, err = client.Get(ctx, "triggers:1:won")
	assert.Error(t, err)

	val, err := client.Get(ctx, "triggers:1:lost")
	require.NoError(t, err)
	assert.Equal(t, "b", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "triggers:1:won", "a", 1*time.Minute)
	_ = client.Set(ctx, "triggers:1:lost", "b", 1*time.Minute)
	_ = client.Set(ctx, "rules:1", "c", 1*time.Minute)

	err := client.DeletePattern(ctx, "triggers:*")
	require.NoError(t, err)

	ok, err := client.Exists(ctx, "triggers:1:won")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = client.Exists(ctx, "rules:1")
	require.NoError(t, err)
	assert.True(t, ok)
}
