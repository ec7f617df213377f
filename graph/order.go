package graph

import (
	"context"
	"fmt"
	"time"

	"go-storefront/apperrors"
	"go-storefront/models"
	"go-storefront/utils"
)

// CreateOrder charges the caller's cart total, snapshots the cart lines
// into an order, and clears the cart. If the order cannot be persisted
// after the charge succeeded, the charge is refunded and the mutation
// fails.
func (r *Resolver) CreateOrder(ctx context.Context, paymentToken string) (*models.Order, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := r.store.GetCart(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, apperrors.NewValidation("your cart is empty")
	}

	var total int64
	items := make([]models.OrderItem, 0, len(cart))
	for _, line := range cart {
		if line.Item == nil {
			return nil, fmt.Errorf("cart line %s references a missing item", line.ID.Hex())
		}
		total += line.Item.Price * int64(line.Quantity)
		items = append(items, models.OrderItem{
			ItemID:      line.ItemID,
			Title:       line.Item.Title,
			Description: line.Item.Description,
			Price:       line.Item.Price,
			Image:       line.Item.Image,
			Quantity:    line.Quantity,
		})
	}

	charge, err := r.gateway.Charge(ctx, utils.ChargeRequest{
		Amount:      total,
		Currency:    r.cfg.Currency,
		SourceToken: paymentToken,
		Description: fmt.Sprintf("order for %s", caller.Email),
	})
	if err != nil {
		return nil, err
	}

	order, err := r.store.CreateOrder(ctx, &models.Order{
		UserID:    caller.ID,
		Items:     items,
		Total:     charge.Amount,
		ChargeID:  charge.ID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		// The card was charged but the order is not durable. Refund so the
		// customer is never charged for an order that does not exist.
		if refundErr := r.gateway.Refund(ctx, charge.ID); refundErr != nil {
			r.log.Error("refund after failed order persist also failed",
				"charge_id", charge.ID, "user", caller.ID.Hex(), "error", refundErr)
			return nil, fmt.Errorf("order could not be saved and refund of charge %s failed, contact support: %w", charge.ID, err)
		}
		return nil, fmt.Errorf("order could not be saved, the charge was refunded: %w", err)
	}

	if err := r.store.ClearCart(ctx, caller.ID); err != nil {
		// The order is durable; leftover cart lines are recoverable noise.
		r.log.Error("failed to clear cart after checkout", "user", caller.ID.Hex(), "error", err)
	}

	return order, nil
}

// Orders returns the caller's order history.
func (r *Resolver) Orders(ctx context.Context) ([]*models.Order, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return r.store.ListOrders(ctx, caller.ID)
}

// Order returns a single order. The caller must own it or hold ADMIN.
func (r *Resolver) Order(ctx context.Context, id string) (*models.Order, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	orderID, err := parseObjectID(id, "order")
	if err != nil {
		return nil, err
	}
	order, err := r.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NewNotFound("no order found")
	}

	if err := checkOwnerOrPermission(caller, order.UserID, models.PermissionAdmin); err != nil {
		return nil, err
	}
	return order, nil
}
