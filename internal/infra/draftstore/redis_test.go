//go:build unit

package draftstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/infra/draftstore"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionKey = "session_1726000000000_abc123def"
	testTTL        = 24 * time.Hour
)

func setupStore(t *testing.T) (*draftstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := draftstore.NewRedisStore(client, config.CheckoutConfig{DraftTTL: testTTL}, logger)
	return store, mr
}

func TestShippingDraft(t *testing.T) {
	t.Run("save and get round-trip", func(t *testing.T) {
		store, mr := setupStore(t)
		draft := builder.NewCheckoutBuilder().BuildShippingDraft()

		require.NoError(t, store.SaveShipping(context.Background(), testSessionKey, draft))

		got, err := store.GetShipping(context.Background(), testSessionKey)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, draft, *got)

		assert.Equal(t, testTTL, mr.TTL("checkout:shipping:"+testSessionKey))
	})

	t.Run("absent draft is nil, not an error", func(t *testing.T) {
		store, _ := setupStore(t)

		got, err := store.GetShipping(context.Background(), testSessionKey)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupted payload is a store failure", func(t *testing.T) {
		store, mr := setupStore(t)
		require.NoError(t, mr.Set("checkout:shipping:"+testSessionKey, "{not json"))

		_, err := store.GetShipping(context.Background(), testSessionKey)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})
}

func TestPaymentDraft(t *testing.T) {
	t.Run("save and get round-trip", func(t *testing.T) {
		store, mr := setupStore(t)
		draft := builder.NewCheckoutBuilder().BuildPaymentDraft()

		require.NoError(t, store.SavePayment(context.Background(), testSessionKey, draft))

		got, err := store.GetPayment(context.Background(), testSessionKey)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, draft, *got)

		assert.Equal(t, testTTL, mr.TTL("checkout:payment:"+testSessionKey))
	})

	t.Run("absent draft is nil, not an error", func(t *testing.T) {
		store, _ := setupStore(t)

		got, err := store.GetPayment(context.Background(), testSessionKey)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestPendingOrder(t *testing.T) {
	t.Run("save and get round-trip", func(t *testing.T) {
		store, mr := setupStore(t)

		require.NoError(t, store.SavePendingOrder(context.Background(), testSessionKey, "42"))

		got, err := store.GetPendingOrder(context.Background(), testSessionKey)
		require.NoError(t, err)
		assert.Equal(t, "42", got)

		assert.Equal(t, testTTL, mr.TTL("checkout:pending_order:"+testSessionKey))
	})

	t.Run("absent marker is empty, not an error", func(t *testing.T) {
		store, _ := setupStore(t)

		got, err := store.GetPendingOrder(context.Background(), testSessionKey)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("expired marker is gone", func(t *testing.T) {
		store, mr := setupStore(t)

		require.NoError(t, store.SavePendingOrder(context.Background(), testSessionKey, "42"))
		mr.FastForward(testTTL + time.Minute)

		got, err := store.GetPendingOrder(context.Background(), testSessionKey)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestClearDrafts(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	b := builder.NewCheckoutBuilder()

	require.NoError(t, store.SaveShipping(ctx, testSessionKey, b.BuildShippingDraft()))
	require.NoError(t, store.SavePayment(ctx, testSessionKey, b.BuildPaymentDraft()))
	require.NoError(t, store.SavePendingOrder(ctx, testSessionKey, "42"))

	require.NoError(t, store.ClearDrafts(ctx, testSessionKey))

	assert.False(t, mr.Exists("checkout:shipping:"+testSessionKey))
	assert.False(t, mr.Exists("checkout:payment:"+testSessionKey))
	assert.False(t, mr.Exists("checkout:pending_order:"+testSessionKey))

	shipping, err := store.GetShipping(ctx, testSessionKey)
	require.NoError(t, err)
	assert.Nil(t, shipping)

	// Clearing an already-empty session is a no-op, not an error.
	assert.NoError(t, store.ClearDrafts(ctx, testSessionKey))
}
