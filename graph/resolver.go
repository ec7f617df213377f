// Package graph provides the GraphQL resolvers for the storefront API.
package graph

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-storefront/apperrors"
	"go-storefront/config"
	"go-storefront/database"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/utils"
)

// Message is the acknowledgement payload returned by mutations that have
// no entity to return.
type Message struct {
	Message string `json:"message"`
}

// Resolver is the root resolver. It holds every collaborator the
// mutations need; no state is shared between calls.
type Resolver struct {
	store   database.Store
	mailer  utils.Mailer
	gateway utils.Gateway
	cfg     *config.Config
	log     *slog.Logger
}

// NewResolver creates a root resolver with the given dependencies.
func NewResolver(store database.Store, mailer utils.Mailer, gateway utils.Gateway, cfg *config.Config, log *slog.Logger) *Resolver {
	return &Resolver{
		store:   store,
		mailer:  mailer,
		gateway: gateway,
		cfg:     cfg,
		log:     log,
	}
}

// currentUser loads the authenticated caller or fails with an AuthError.
func (r *Resolver) currentUser(ctx context.Context) (*models.User, error) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return nil, apperrors.NewAuth("you must be logged in to do that")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewAuth("you must be logged in to do that")
	}
	user, err := r.store.GetUserByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewAuth("you must be logged in to do that")
	}
	return user, nil
}

// checkPermission fails with an AuthError unless the user's permission set
// intersects the required set. It is a guard: callers use it only for its
// failure path.
func checkPermission(user *models.User, required ...string) error {
	if !user.HasPermission(required...) {
		return apperrors.NewAuth(fmt.Sprintf(
			"you do not have sufficient permissions: %v, you need one of: %v",
			user.Permissions, required,
		))
	}
	return nil
}

// checkOwnerOrPermission is the shared authorization predicate: the caller
// must own the resource or hold one of the required permissions. An empty
// required set makes the check owner-only.
func checkOwnerOrPermission(caller *models.User, ownerID primitive.ObjectID, required ...string) error {
	if caller.ID == ownerID {
		return nil
	}
	if len(required) > 0 && caller.HasPermission(required...) {
		return nil
	}
	return apperrors.NewAuth("you don't have permission to do that")
}

func parseObjectID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidation(fmt.Sprintf("invalid %s id", what))
	}
	return id, nil
}
