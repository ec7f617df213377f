// Package database provides the storage layer for the storefront service.
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-storefront/models"
)

// Store exposes the per-entity CRUD operations the resolvers need. Lookups
// return (nil, nil) when the entity does not exist; the caller decides
// whether that is an error.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByResetToken matches only tokens whose expiry is after now.
	GetUserByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	SetResetToken(ctx context.Context, userID primitive.ObjectID, token string, expiry time.Time) error
	// UpdatePassword stores a new password hash and clears any reset token.
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, passwordHash string) error
	UpdatePermissions(ctx context.Context, userID primitive.ObjectID, permissions []string) (*models.User, error)

	// Items
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	GetItem(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	ListItems(ctx context.Context) ([]*models.Item, error)
	UpdateItem(ctx context.Context, id primitive.ObjectID, update models.ItemUpdate) (*models.Item, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID) error

	// Cart. UpsertCartItem atomically increments the quantity of the
	// (user, item) line, creating it with quantity 1 when absent.
	UpsertCartItem(ctx context.Context, userID, itemID primitive.ObjectID) (*models.CartItem, error)
	GetCartItem(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	DeleteCartItem(ctx context.Context, id primitive.ObjectID) error
	GetCart(ctx context.Context, userID primitive.ObjectID) ([]*models.CartItem, error)
	ClearCart(ctx context.Context, userID primitive.ObjectID) error

	// Orders
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListOrders(ctx context.Context, userID primitive.ObjectID) ([]*models.Order, error)
}
