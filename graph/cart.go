package graph

import (
	"context"

	"go-storefront/apperrors"
	"go-storefront/models"
)

// AddToCart puts one unit of the item in the caller's cart. Adding an item
// already in the cart increments its quantity; there is never more than
// one cart line per (user, item) pair.
func (r *Resolver) AddToCart(ctx context.Context, itemID string) (*models.CartItem, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseObjectID(itemID, "item")
	if err != nil {
		return nil, err
	}
	item, err := r.store.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("no item found")
	}

	return r.store.UpsertCartItem(ctx, caller.ID, id)
}

// RemoveFromCart deletes a cart line owned by the caller.
func (r *Resolver) RemoveFromCart(ctx context.Context, cartItemID string) (*models.CartItem, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseObjectID(cartItemID, "cart item")
	if err != nil {
		return nil, err
	}
	line, err := r.store.GetCartItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, apperrors.NewNotFound("no cart item found")
	}

	// Owner-only: no permission grants removal from someone else's cart.
	if err := checkOwnerOrPermission(caller, line.UserID); err != nil {
		return nil, err
	}

	if err := r.store.DeleteCartItem(ctx, id); err != nil {
		return nil, err
	}
	return line, nil
}

// Cart returns the caller's cart lines with item details.
func (r *Resolver) Cart(ctx context.Context) ([]*models.CartItem, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return r.store.GetCart(ctx, caller.ID)
}
