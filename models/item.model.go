package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item represents a sellable product. Price is an integer amount in minor
// currency units (cents).
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       int64              `bson:"price" json:"price"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
}

// ItemUpdate carries the optional fields of an item update. Nil fields are
// left untouched.
type ItemUpdate struct {
	Title       *string
	Description *string
	Price       *int64
	Image       *string
}
