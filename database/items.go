package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-storefront/models"
)

// CreateItem inserts a new item.
func (m *Mongo) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	result, err := m.items.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return item, nil
}

// GetItem retrieves an item by id.
func (m *Mongo) GetItem(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := m.items.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// ListItems returns the full catalog.
func (m *Mongo) ListItems(ctx context.Context) ([]*models.Item, error) {
	cursor, err := m.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// UpdateItem applies the non-nil fields of update and returns the updated
// item, or (nil, nil) if the item does not exist.
func (m *Mongo) UpdateItem(ctx context.Context, id primitive.ObjectID, update models.ItemUpdate) (*models.Item, error) {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if len(set) > 0 {
		_, err := m.items.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("failed to update item: %w", err)
		}
	}
	return m.GetItem(ctx, id)
}

// DeleteItem removes an item from the catalog.
func (m *Mongo) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.items.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
