package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/apperrors"
	"go-storefront/models"
)

func TestMemoryDuplicateEmail(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &models.User{Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, &models.User{Email: "dup@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestMemoryUpsertCartItem(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, &models.User{Email: "a@example.com"})
	require.NoError(t, err)
	item, err := store.CreateItem(ctx, &models.Item{Title: "Hat", Price: 500})
	require.NoError(t, err)

	first, err := store.UpsertCartItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := store.UpsertCartItem(ctx, user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)
}

func TestMemoryUpsertCartItemConcurrent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, &models.User{Email: "a@example.com"})
	require.NoError(t, err)
	item, err := store.CreateItem(ctx, &models.Item{Title: "Hat", Price: 500})
	require.NoError(t, err)

	const adds = 50
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.UpsertCartItem(ctx, user.ID, item.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := store.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart, 1, "concurrent adds must collapse into one line")
	assert.Equal(t, adds, cart[0].Quantity)
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	created, err := store.CreateUser(ctx, &models.User{Email: "a@example.com", Name: "A"})
	require.NoError(t, err)
	created.Name = "mutated"

	reloaded, err := store.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", reloaded.Name)
}

func TestMemoryClearCartScopedToUser(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	a, err := store.CreateUser(ctx, &models.User{Email: "a@example.com"})
	require.NoError(t, err)
	b, err := store.CreateUser(ctx, &models.User{Email: "b@example.com"})
	require.NoError(t, err)
	item, err := store.CreateItem(ctx, &models.Item{Title: "Hat", Price: 500})
	require.NoError(t, err)

	_, err = store.UpsertCartItem(ctx, a.ID, item.ID)
	require.NoError(t, err)
	_, err = store.UpsertCartItem(ctx, b.ID, item.ID)
	require.NoError(t, err)

	require.NoError(t, store.ClearCart(ctx, a.ID))

	aCart, err := store.GetCart(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, aCart)

	bCart, err := store.GetCart(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, bCart, 1)
}
