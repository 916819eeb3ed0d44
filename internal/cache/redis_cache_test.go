package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tixbase/dibs-payment-service/internal/cache"
	"github.com/tixbase/dibs-payment-service/internal/config"
	"github.com/tixbase/dibs-payment-service/internal/models"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL:  10 * time.Minute,
		CheckoutTTL: time.Hour,
	}
	redisCache := cache.NewRedisCache(client, cfg)

	return redisCache, mock
}

func TestKey(t *testing.T) {
	assert.Equal(t, "checkout:abc", cache.Key(cache.CheckoutKeyPrefix, "abc"))
}

func TestGet(t *testing.T) {
	ctx := t.Context()

	paymentID := uuid.New()
	testKey := cache.Key(cache.CheckoutKeyPrefix, paymentID.String())
	session := models.CheckoutSession{
		PaymentID: paymentID,
		Action:    "https://payment.architrade.com/paymentweb/start.action",
		Fields:    map[string]string{"merchant": "90001234", "amount": "12500"},
	}
	jsonData, err := json.Marshal(session)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result models.CheckoutSession

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, session, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result models.CheckoutSession

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result models.CheckoutSession

		expectedErr := errors.New("redis connection error")

		mock.ExpectGet(testKey).SetErr(expectedErr)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := "checkout:xyz"
	value := map[string]string{"merchant": "90001234"}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Hour).SetVal("OK")

		err := redisCache.Set(ctx, testKey, value, time.Hour)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL falls back to default", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 10*time.Minute).SetVal("OK")

		err := redisCache.Set(ctx, testKey, value, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		expectedErr := errors.New("redis write error")
		mock.ExpectSet(testKey, jsonData, time.Hour).SetErr(expectedErr)

		err := redisCache.Set(ctx, testKey, value, time.Hour)

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := "checkout:gone"

	t.Run("Success", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		err := redisCache.Delete(ctx, testKey)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		expectedErr := errors.New("redis delete error")
		mock.ExpectDel(testKey).SetErr(expectedErr)

		err := redisCache.Delete(ctx, testKey)

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
