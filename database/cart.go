package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-storefront/models"
)

// UpsertCartItem increments the quantity of the (user, item) cart line,
// creating it with quantity 1 when absent. The operation is a single
// FindOneAndUpdate upsert, so concurrent adds never produce two rows for
// the same pair.
func (m *Mongo) UpsertCartItem(ctx context.Context, userID, itemID primitive.ObjectID) (*models.CartItem, error) {
	filter := bson.M{"user_id": userID, "item_id": itemID}
	update := bson.M{
		"$inc":         bson.M{"quantity": 1},
		"$setOnInsert": bson.M{"user_id": userID, "item_id": itemID},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cartItem models.CartItem
	err := m.cart.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cartItem)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return m.populateItem(ctx, &cartItem)
}

// GetCartItem retrieves a cart line by id, with its item details.
func (m *Mongo) GetCartItem(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var cartItem models.CartItem
	err := m.cart.FindOne(ctx, bson.M{"_id": id}).Decode(&cartItem)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return m.populateItem(ctx, &cartItem)
}

// DeleteCartItem removes a cart line.
func (m *Mongo) DeleteCartItem(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.cart.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// GetCart returns the user's cart lines with item details.
func (m *Mongo) GetCart(ctx context.Context, userID primitive.ObjectID) ([]*models.CartItem, error) {
	cursor, err := m.cart.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	defer cursor.Close(ctx)

	var lines []*models.CartItem
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	for _, line := range lines {
		if _, err := m.populateItem(ctx, line); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// ClearCart deletes all cart lines for the user.
func (m *Mongo) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	_, err := m.cart.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (m *Mongo) populateItem(ctx context.Context, line *models.CartItem) (*models.CartItem, error) {
	item, err := m.GetItem(ctx, line.ItemID)
	if err != nil {
		return nil, err
	}
	line.Item = item
	return line, nil
}
