package graph

import (
	"context"

	"go-storefront/apperrors"
	"go-storefront/models"
)

// CreateItemInput carries the allow-listed fields of createItem; nothing
// else reaches storage.
type CreateItemInput struct {
	Title       string
	Description string
	Price       int64
	Image       string
}

// CreateItem creates an item owned by the caller.
func (r *Resolver) CreateItem(ctx context.Context, input CreateItemInput) (*models.Item, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	return r.store.CreateItem(ctx, &models.Item{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		UserID:      caller.ID,
	})
}

// UpdateItem applies a partial update. The caller must own the item or
// hold ADMIN.
func (r *Resolver) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (*models.Item, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	itemID, err := parseObjectID(id, "item")
	if err != nil {
		return nil, err
	}
	item, err := r.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("no item found")
	}

	if err := checkOwnerOrPermission(caller, item.UserID, models.PermissionAdmin); err != nil {
		return nil, err
	}

	return r.store.UpdateItem(ctx, itemID, update)
}

// DeleteItem deletes an item. The caller must own it or hold ADMIN or
// ITEMDELETE.
func (r *Resolver) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	itemID, err := parseObjectID(id, "item")
	if err != nil {
		return nil, err
	}
	item, err := r.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("no item found")
	}

	if err := checkOwnerOrPermission(caller, item.UserID, models.PermissionAdmin, models.PermissionItemDelete); err != nil {
		return nil, err
	}

	if err := r.store.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}
	return item, nil
}

// Items returns the catalog.
func (r *Resolver) Items(ctx context.Context) ([]*models.Item, error) {
	return r.store.ListItems(ctx)
}

// Item returns a single catalog item, or nil if absent.
func (r *Resolver) Item(ctx context.Context, id string) (*models.Item, error) {
	itemID, err := parseObjectID(id, "item")
	if err != nil {
		return nil, err
	}
	return r.store.GetItem(ctx, itemID)
}
