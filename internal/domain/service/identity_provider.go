// Package service defines the contracts of external services used by the domain.
package service

import (
	"context"
	"fmt"

	"townscoffee/internal/domain/entity"
)

// IdentityChange is one value of the identity change stream. An empty
// UserID means nobody is signed in.
type IdentityChange struct {
	UserID string
}

// IdentityProvider is the managed authentication service. It owns the
// process-wide session; callers never cache it.
type IdentityProvider interface {
	// CreateAccount registers email/password and returns the new user id.
	CreateAccount(ctx context.Context, email, password string) (string, error)

	// DeleteAccount removes the account with id userID.
	DeleteAccount(ctx context.Context, userID string) error

	// SignIn verifies email/password and makes the result the current session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut clears the current session.
	SignOut(ctx context.Context) error

	// SendPasswordReset e-mails a password reset link.
	SendPasswordReset(ctx context.Context, email string) error

	// VerifyToken checks an ID token and returns the user id it was issued to.
	VerifyToken(ctx context.Context, idToken string) (string, error)

	// CurrentUserID returns the signed-in user id, if any.
	CurrentUserID() (string, bool)

	// Changes streams session changes, replaying the latest one first.
	// The returned func unsubscribes.
	Changes() (<-chan IdentityChange, func())
}

// ProviderErrorKind classifies identity provider failures.
type ProviderErrorKind string

const (
	ProviderErrInvalidCredentials ProviderErrorKind = "invalid_credentials"
	ProviderErrUserNotFound       ProviderErrorKind = "user_not_found"
	ProviderErrUserDisabled       ProviderErrorKind = "user_disabled"
	ProviderErrTooManyRequests    ProviderErrorKind = "too_many_requests"
	ProviderErrEmailExists        ProviderErrorKind = "email_already_exists"
	ProviderErrInvalidToken       ProviderErrorKind = "invalid_token"
	ProviderErrUnknown            ProviderErrorKind = "unknown"
)

// ProviderError carries the provider's own message next to its kind.
type ProviderError struct {
	Kind    ProviderErrorKind
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: %s: %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
