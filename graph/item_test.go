package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/apperrors"
	"go-storefront/models"
)

func TestCreateItem(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	owner := seedUser(t, store, "seller@example.com")

	t.Run("requires authentication", func(t *testing.T) {
		_, err := r.CreateItem(context.Background(), CreateItemInput{Title: "Hat", Price: 500})
		require.Error(t, err)
		assert.True(t, apperrors.IsAuth(err))
	})

	t.Run("creates with caller as owner", func(t *testing.T) {
		item, err := r.CreateItem(authedCtx(owner), CreateItemInput{
			Title:       "Hat",
			Description: "A fine hat",
			Price:       500,
			Image:       "hat.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, item.UserID)
		assert.Equal(t, int64(500), item.Price)
	})
}

func TestUpdateItem(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	owner := seedUser(t, store, "seller@example.com")
	admin := seedUser(t, store, "admin@example.com", models.PermissionUser, models.PermissionAdmin)
	stranger := seedUser(t, store, "stranger@example.com")
	item := seedItem(t, store, owner, "Hat", 500)

	newTitle := "Better Hat"
	newPrice := int64(700)

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := r.UpdateItem(authedCtx(stranger), item.ID.Hex(), models.ItemUpdate{Title: &newTitle})
		require.Error(t, err)
		assert.True(t, apperrors.IsAuth(err))
	})

	t.Run("owner can update", func(t *testing.T) {
		updated, err := r.UpdateItem(authedCtx(owner), item.ID.Hex(), models.ItemUpdate{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "Better Hat", updated.Title)
		assert.Equal(t, int64(500), updated.Price)
	})

	t.Run("admin can update", func(t *testing.T) {
		updated, err := r.UpdateItem(authedCtx(admin), item.ID.Hex(), models.ItemUpdate{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, int64(700), updated.Price)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := r.UpdateItem(authedCtx(owner), "ffffffffffffffffffffffff", models.ItemUpdate{Title: &newTitle})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestDeleteItem(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	owner := seedUser(t, store, "seller@example.com")
	deleter := seedUser(t, store, "deleter@example.com", models.PermissionUser, models.PermissionItemDelete)
	stranger := seedUser(t, store, "stranger@example.com")

	t.Run("stranger is rejected", func(t *testing.T) {
		item := seedItem(t, store, owner, "Hat", 500)
		_, err := r.DeleteItem(authedCtx(stranger), item.ID.Hex())
		require.Error(t, err)
		assert.True(t, apperrors.IsAuth(err))
	})

	t.Run("owner can delete", func(t *testing.T) {
		item := seedItem(t, store, owner, "Hat", 500)
		deleted, err := r.DeleteItem(authedCtx(owner), item.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, item.ID, deleted.ID)

		gone, err := store.GetItem(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("ITEMDELETE holder can delete", func(t *testing.T) {
		item := seedItem(t, store, owner, "Hat", 500)
		_, err := r.DeleteItem(authedCtx(deleter), item.ID.Hex())
		require.NoError(t, err)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := r.DeleteItem(authedCtx(owner), "ffffffffffffffffffffffff")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
