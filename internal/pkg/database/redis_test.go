package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	ctx := context.Background()
	key := "billing:event:evt_123"
	value := "1"
	expiration := 24 * time.Hour

	mock.ExpectSet(key, value, expiration).SetVal("OK")

	err := client.Set(ctx, key, value, expiration)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	t.Run("Key exists", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		client := &RedisClient{client: db}

		mock.ExpectGet("billing:checkout:order-1").SetVal("cs_test_123")

		val, err := client.Get(context.Background(), "billing:checkout:order-1")

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_123", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Key missing", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		client := &RedisClient{client: db}

		mock.ExpectGet("billing:checkout:order-2").RedisNil()

		_, err := client.Get(context.Background(), "billing:checkout:order-2")

		assert.ErrorIs(t, err, redis.Nil)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{client: db}

	mock.ExpectDel("billing:event:evt_123").SetVal(1)

	err := client.Delete(context.Background(), "billing:event:evt_123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetNX(t *testing.T) {
	// miniredis exercises the real first-writer-wins semantics the webhook
	// dedup depends on
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	key := "billing:event:evt_dedup"

	set, err := client.SetNX(ctx, key, "1", time.Hour)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = client.SetNX(ctx, key, "1", time.Hour)
	require.NoError(t, err)
	assert.False(t, set)

	// After expiry the key is free again
	mr.FastForward(2 * time.Hour)

	set, err = client.SetNX(ctx, key, "1", time.Hour)
	require.NoError(t, err)
	assert.True(t, set)
}
