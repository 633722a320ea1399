package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	mockUC "townscoffee/internal/mocks/usecase"
	"townscoffee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_SignUp(t *testing.T) {
	h, authUC := createTestAuthHandler(t)

	authUC.EXPECT().SignUp(mock.Anything, mock.MatchedBy(func(in usecase.SignUpInput) bool {
		return in.Email == "ana@example.com" &&
			in.FirstName == "Ana" &&
			in.BirthDate.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC))
	})).Return(&usecase.SignUpOutput{
		User:    &entity.User{ID: "uid-1", FirstName: "Ana", Email: "ana@example.com"},
		Message: "Account created successfully",
	}, nil)

	rec, env := serve(t, h.SignUp, call{
		method: http.MethodPost,
		target: "/auth/signup",
		body:   `{"firstName":"Ana","lastName":"Rojas","email":"ana@example.com","password":"secret1","birthDate":"1990-05-17"}`,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Account created successfully", env.Message)
	assert.Equal(t, "uid-1", decodeData[entity.User](t, env).ID)
}

func TestAuthHandler_SignUpRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"firstName":"Ana","lastName":"Rojas","password":"secret1"}`},
		{name: "bad birth date", body: `{"firstName":"Ana","lastName":"Rojas","email":"a@b.co","password":"secret1","birthDate":"17/05/1990"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestAuthHandler(t)

			rec, env := serve(t, h.SignUp, call{method: http.MethodPost, target: "/auth/signup", body: tt.body})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
			assert.NotEmpty(t, env.Error.Details)
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	expires := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	authUC.EXPECT().SignIn(mock.Anything, usecase.SignInInput{Email: "ana@example.com", Password: "secret1"}).
		Return(&usecase.SignInOutput{
			User:    &entity.User{ID: "uid-1", FirstName: "Ana"},
			Session: &entity.Session{UserID: "uid-1", IDToken: "id-token", RefreshToken: "refresh", ExpiresAt: expires},
			Message: "Welcome back, Ana",
		}, nil)

	rec, env := serve(t, h.SignIn, call{
		method: http.MethodPost,
		target: "/auth/signin",
		body:   `{"email":"ana@example.com","password":"secret1"}`,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	session := decodeData[SessionResponse](t, env)
	assert.Equal(t, "id-token", session.IDToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.True(t, expires.Equal(session.ExpiresAt))
	assert.Equal(t, "Welcome back, Ana", env.Message)
}

func TestAuthHandler_SignInInvalidCredentials(t *testing.T) {
	h, authUC := createTestAuthHandler(t)

	authUC.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("INVALID_PASSWORD"))

	rec, env := serve(t, h.SignIn, call{
		method: http.MethodPost,
		target: "/auth/signin",
		body:   `{"email":"ana@example.com","password":"wrong"}`,
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h, authUC := createTestAuthHandler(t)

	authUC.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{Email: "ghost@example.com"}).
		Return(&usecase.ResetPasswordOutput{Message: "If the address is registered, a reset link was sent", EmailSent: true}, nil)

	rec, env := serve(t, h.ResetPassword, call{
		method: http.MethodPost,
		target: "/auth/reset-password",
		body:   `{"email":"ghost@example.com"}`,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[ResetPasswordResponse](t, env).EmailSent)
}

func TestAuthHandler_SignOutFailure(t *testing.T) {
	h, authUC := createTestAuthHandler(t)

	authUC.EXPECT().SignOut(mock.Anything).Return(nil, domainerrors.ErrSignOutFailed.WithDetails("revoked"))

	rec, env := serve(t, h.SignOut, call{method: http.MethodPost, target: "/auth/signout"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SIGN_OUT_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_StreamAuthState(t *testing.T) {
	h, authUC := createTestAuthHandler(t)

	states := make(chan entity.AuthState, 2)
	states <- entity.Unauthenticated()
	states <- entity.Authenticated(&entity.User{ID: "uid-1"})
	close(states)

	stopped := false
	authUC.EXPECT().ObserveAuthState(mock.Anything).
		Return((<-chan entity.AuthState)(states), func() { stopped = true })

	rec, _ := serve(t, h.StreamAuthState, call{method: http.MethodGet, target: "/auth/state", userID: "uid-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event: auth\ndata: {\"status\":\"unauthenticated\"}\n\n")
	assert.Contains(t, rec.Body.String(), `"status":"authenticated","user":{"id":"uid-1"`)
	assert.True(t, stopped)
}

func TestAuthHandler_StreamAuthStateHidesOtherUsers(t *testing.T) {
	h, authUC := createTestAuthHandler(t)

	other := &entity.User{
		ID:         "uid-a",
		Email:      "ana@example.com",
		NationalID: "1012345678",
		Phone:      "3001234567",
		Address:    "Calle 1",
	}
	states := make(chan entity.AuthState, 4)
	states <- entity.Loading()
	states <- entity.Authenticated(other)
	states <- entity.AuthError("invalid email or password")
	states <- entity.Authenticated(&entity.User{ID: "uid-b"})
	close(states)

	authUC.EXPECT().ObserveAuthState(mock.Anything).
		Return((<-chan entity.AuthState)(states), func() {})

	rec, _ := serve(t, h.StreamAuthState, call{method: http.MethodGet, target: "/auth/state", userID: "uid-b"})

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, body, "uid-a")
	assert.NotContains(t, body, "1012345678")
	assert.NotContains(t, body, "invalid email or password")
	assert.Equal(t, 2, strings.Count(body, `"status":"unauthenticated"`))
	assert.Contains(t, body, `"status":"loading"`)
	assert.Contains(t, body, `"user":{"id":"uid-b"`)
}

func TestAuthHandler_StreamAuthStateRequiresUser(t *testing.T) {
	h, _ := createTestAuthHandler(t)

	rec, env := serve(t, h.StreamAuthState, call{method: http.MethodGet, target: "/auth/state"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}
