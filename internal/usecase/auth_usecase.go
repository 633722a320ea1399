// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"townscoffee/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a customer account.
type SignUpInput struct {
	FirstName  string
	LastName   string
	NationalID string
	Email      string
	Password   string
	Phone      string
	State      string
	City       string
	ZipCode    string
	Address    string
	BirthDate  time.Time
}

// SignInInput defines the credentials of a password sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the account a reset e-mail is sent to.
type ResetPasswordInput struct {
	Email string
}

// UpdateProfileInput defines the profile fields a user may change.
type UpdateProfileInput struct {
	UserID     string
	FirstName  string
	LastName   string
	NationalID string
	Phone      string
	State      string
	City       string
	ZipCode    string
	Address    string
	BirthDate  time.Time
}

// --- Output DTOs ---

// SignUpOutput returns the created user.
type SignUpOutput struct {
	User    *entity.User
	Message string
}

// SignInOutput returns the signed-in user and the issued session.
type SignInOutput struct {
	User    *entity.User
	Session *entity.Session
	Message string
}

// ResetPasswordOutput is the same for registered and unknown addresses.
type ResetPasswordOutput struct {
	Message   string
	EmailSent bool
}

// SignOutOutput confirms the local session was cleared.
type SignOutOutput struct {
	Message string
}

// AuthUsecase defines the authentication operations.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error)
	SignOut(ctx context.Context) (*SignOutOutput, error)

	// ObserveAuthState streams authentication states, latest first, until
	// ctx ends or the returned func is called.
	ObserveAuthState(ctx context.Context) (<-chan entity.AuthState, func())

	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
}
