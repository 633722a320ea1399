package entity

import "time"

// AuthStatus enumerates the observable authentication states.
type AuthStatus string

const (
	AuthStatusUnauthenticated AuthStatus = "unauthenticated"
	AuthStatusLoading         AuthStatus = "loading"
	AuthStatusAuthenticated   AuthStatus = "authenticated"
	AuthStatusError           AuthStatus = "error"
)

// AuthState is one value of the authentication state stream. User is set only
// when authenticated and Message only on error.
type AuthState struct {
	Status  AuthStatus `json:"status"`
	User    *User      `json:"user,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Unauthenticated returns the signed-out state.
func Unauthenticated() AuthState {
	return AuthState{Status: AuthStatusUnauthenticated}
}

// Loading returns the state published while a session change is in flight.
func Loading() AuthState {
	return AuthState{Status: AuthStatusLoading}
}

// Authenticated returns the signed-in state for user.
func Authenticated(user *User) AuthState {
	return AuthState{Status: AuthStatusAuthenticated, User: user}
}

// AuthError returns the failed state with message.
func AuthError(message string) AuthState {
	return AuthState{Status: AuthStatusError, Message: message}
}

// Session holds the tokens issued by a password sign in.
type Session struct {
	UserID       string    `json:"userId"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
