package graph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-storefront/apperrors"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/utils"
)

// resetTokenValidity is how long a password-reset token stays usable.
const resetTokenValidity = time.Hour

// SignupInput carries the signup mutation arguments.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// Signup creates a user with the USER permission and signs them in.
func (r *Resolver) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	email := strings.ToLower(input.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := r.store.CreateUser(ctx, &models.User{
		Name:        input.Name,
		Email:       email,
		Password:    string(hash),
		Permissions: []string{models.PermissionUser},
	})
	if err != nil {
		return nil, err
	}

	if err := r.issueSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signin verifies credentials and signs the user in.
func (r *Resolver) Signin(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(email)

	user, err := r.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("no such user found for email %s", email))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.NewAuth("invalid password")
	}

	if err := r.issueSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signout clears the session cookie. It cannot fail.
func (r *Resolver) Signout(ctx context.Context) *Message {
	middleware.ClearSessionCookie(ctx)
	return &Message{Message: "Goodbye!"}
}

// RequestReset stores a time-bounded reset token on the user and mails a
// reset link. The acknowledgement does not reveal whether the mail was
// delivered; delivery failures are logged server-side.
func (r *Resolver) RequestReset(ctx context.Context, email string) (*Message, error) {
	email = strings.ToLower(email)

	user, err := r.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("no such user found for email %s", email))
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return nil, err
	}
	expiry := time.Now().Add(resetTokenValidity)
	if err := r.store.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return nil, err
	}

	subject, body := utils.PasswordResetBody(r.cfg.AppURL, token)
	if err := r.mailer.SendMail(user.Email, subject, body); err != nil {
		r.log.Error("failed to send password reset email", "email", user.Email, "error", err)
	}

	return &Message{Message: "Thanks!"}, nil
}

// ResetPassword redeems a reset token for a new password and signs the
// user in.
func (r *Resolver) ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) (*models.User, error) {
	if password != confirmPassword {
		return nil, apperrors.NewValidation("your passwords don't match")
	}

	user, err := r.store.GetUserByResetToken(ctx, resetToken, time.Now())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewAuth("this token is either invalid or expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := r.store.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, err
	}

	updated, err := r.store.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if err := r.issueSession(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdatePermissions replaces the target user's permission set. The caller
// needs ADMIN or PERMISSIONUPDATE.
func (r *Resolver) UpdatePermissions(ctx context.Context, userID string, permissions []string) (*models.User, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkPermission(caller, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	targetID, err := parseObjectID(userID, "user")
	if err != nil {
		return nil, err
	}
	updated, err := r.store.UpdatePermissions(ctx, targetID, permissions)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("no such user found")
	}
	return updated, nil
}

// Me returns the authenticated caller, or nil for anonymous requests.
func (r *Resolver) Me(ctx context.Context) (*models.User, error) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return nil, nil
	}
	objectID, err := parseObjectID(id, "user")
	if err != nil {
		return nil, nil
	}
	return r.store.GetUserByID(ctx, objectID)
}

func (r *Resolver) issueSession(ctx context.Context, user *models.User) error {
	token, err := utils.GenerateJWT(user.ID.Hex(), []byte(r.cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}
	middleware.SetSessionCookie(ctx, token)
	return nil
}
