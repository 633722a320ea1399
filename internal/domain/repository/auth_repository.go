// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/errors"
)

// ErrUserNotFound is returned when no profile exists for a user id.
var ErrUserNotFound = errors.New("user not found")

// AuthRepository combines the identity provider with the users collection.
type AuthRepository interface {
	// SignUp creates the identity account for email/password and persists
	// user under the new id. If the profile write fails the account is deleted
	// again before the error is returned.
	SignUp(ctx context.Context, email, password string, user *entity.User) (*entity.User, error)

	// SignIn authenticates with the identity provider and loads the profile.
	SignIn(ctx context.Context, email, password string) (*entity.User, *entity.Session, error)

	// SignOut clears the local session.
	SignOut(ctx context.Context) error

	// ResetPassword asks the identity provider to e-mail a reset link.
	ResetPassword(ctx context.Context, email string) error

	// GetUser loads the profile stored for userID.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// UpdateUser merges user into its stored profile.
	UpdateUser(ctx context.Context, user *entity.User) error

	// CurrentUserID returns the id of the locally signed-in user, if any.
	CurrentUserID() (string, bool)

	// AuthStates streams authentication state changes. The latest state is
	// delivered first. The returned func unsubscribes.
	AuthStates(ctx context.Context) (<-chan entity.AuthState, func())
}
