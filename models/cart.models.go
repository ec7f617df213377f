package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a cart line: one row per (user, item) pair, quantity >= 1.
// The storage layer enforces the pair uniqueness with a compound index.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	ItemID   primitive.ObjectID `bson:"item_id" json:"item_id"`
	Quantity int                `bson:"quantity" json:"quantity"`

	// Item is populated on reads that join item details; it is never
	// written back through this struct.
	Item *Item `bson:"item,omitempty" json:"item,omitempty"`
}
