package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission labels granting elevated capability to a user.
const (
	PermissionUser             = "USER"
	PermissionAdmin            = "ADMIN"
	PermissionItemDelete       = "ITEMDELETE"
	PermissionPermissionUpdate = "PERMISSIONUPDATE"
)

// User represents a user in the system
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password,omitempty" json:"-"`
	Permissions      []string           `bson:"permissions" json:"permissions"`
	ResetToken       string             `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry *time.Time         `bson:"reset_token_expiry,omitempty" json:"-"`
}

// HasPermission reports whether the user's permission set intersects the
// required set.
func (u *User) HasPermission(required ...string) bool {
	for _, have := range u.Permissions {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}
