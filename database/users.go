package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-storefront/apperrors"
	"go-storefront/models"
)

// CreateUser inserts a new user. A duplicate email surfaces as a
// ValidationError.
func (m *Mongo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	result, err := m.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewValidation(fmt.Sprintf("email %s is already taken", user.Email))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

// GetUserByID retrieves a user by id.
func (m *Mongo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

// GetUserByEmail retrieves a user by email.
func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

// GetUserByResetToken retrieves the user holding a reset token that has not
// expired yet.
func (m *Mongo) GetUserByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	return m.findUser(ctx, bson.M{
		"reset_token":        token,
		"reset_token_expiry": bson.M{"$gt": now},
	})
}

func (m *Mongo) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// SetResetToken stores a reset token and its expiry on the user.
func (m *Mongo) SetResetToken(ctx context.Context, userID primitive.ObjectID, token string, expiry time.Time) error {
	_, err := m.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	return nil
}

// UpdatePassword stores a new password hash and clears the reset token
// fields in the same write.
func (m *Mongo) UpdatePassword(ctx context.Context, userID primitive.ObjectID, passwordHash string) error {
	_, err := m.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set":   bson.M{"password": passwordHash},
		"$unset": bson.M{"reset_token": "", "reset_token_expiry": ""},
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdatePermissions replaces the user's permission set and returns the
// updated user.
func (m *Mongo) UpdatePermissions(ctx context.Context, userID primitive.ObjectID, permissions []string) (*models.User, error) {
	_, err := m.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"permissions": permissions},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update permissions: %w", err)
	}
	return m.GetUserByID(ctx, userID)
}
