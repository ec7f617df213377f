package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/apperrors"
)

func TestAddToCart(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	user := seedUser(t, store, "shopper@example.com")
	item := seedItem(t, store, user, "Hat", 500)

	t.Run("requires authentication", func(t *testing.T) {
		_, err := r.AddToCart(context.Background(), item.ID.Hex())
		require.Error(t, err)
		assert.True(t, apperrors.IsAuth(err))
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := r.AddToCart(authedCtx(user), "ffffffffffffffffffffffff")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("second add increments instead of duplicating", func(t *testing.T) {
		first, err := r.AddToCart(authedCtx(user), item.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, 1, first.Quantity)

		second, err := r.AddToCart(authedCtx(user), item.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2, second.Quantity)

		cart, err := store.GetCart(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
	})
}

func TestRemoveFromCart(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	user := seedUser(t, store, "shopper@example.com")
	other := seedUser(t, store, "other@example.com")
	item := seedItem(t, store, user, "Hat", 500)

	line, err := r.AddToCart(authedCtx(user), item.ID.Hex())
	require.NoError(t, err)

	t.Run("missing cart item", func(t *testing.T) {
		_, err := r.RemoveFromCart(authedCtx(user), "ffffffffffffffffffffffff")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		_, err := r.RemoveFromCart(authedCtx(other), line.ID.Hex())
		require.Error(t, err)
		assert.True(t, apperrors.IsAuth(err))
	})

	t.Run("owner can remove", func(t *testing.T) {
		removed, err := r.RemoveFromCart(authedCtx(user), line.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, line.ID, removed.ID)

		cart, err := store.GetCart(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Empty(t, cart)
	})
}

func TestCartReturnsItemDetails(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	user := seedUser(t, store, "shopper@example.com")
	item := seedItem(t, store, user, "Hat", 500)

	_, err := r.AddToCart(authedCtx(user), item.ID.Hex())
	require.NoError(t, err)

	cart, err := r.Cart(authedCtx(user))
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.NotNil(t, cart[0].Item)
	assert.Equal(t, "Hat", cart[0].Item.Title)
}
