package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a point-in-time snapshot of a cart line. It copies the item
// fields so later catalog edits never rewrite order history.
type OrderItem struct {
	ItemID      primitive.ObjectID `bson:"item_id" json:"item_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       int64              `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}

// Order represents a completed checkout.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Total     int64              `bson:"total" json:"total"`
	ChargeID  string             `bson:"charge_id" json:"charge_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
