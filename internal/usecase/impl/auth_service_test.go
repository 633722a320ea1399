package impl

import (
	"context"
	"testing"
	"time"

	"townscoffee/config"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"
	mockRepo "townscoffee/internal/mocks/repository"
	"townscoffee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	authRepo *mockRepo.MockAuthRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	authRepo := mockRepo.NewMockAuthRepository(t)
	svc := NewAuthService(AuthServiceParams{
		AuthRepo:  authRepo,
		Analytics: newQuietSink(t),
		Config:    &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 6}},
		Logger:    newDiscardLogger(),
	})

	return authServiceFixtures{service: svc, authRepo: authRepo}
}

func validSignUpInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		FirstName:  " Ana ",
		LastName:   "Gomez",
		NationalID: "1234567890",
		Email:      " ana@example.com ",
		Password:   "secret1",
		Phone:      "3001234567",
		City:       "Salento",
		BirthDate:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		SignUp(ctx, "ana@example.com", "secret1", mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "" && u.Type == entity.UserTypeCustomer && u.FirstName == "Ana" && u.Email == "ana@example.com"
		})).
		RunAndReturn(func(_ context.Context, _, _ string, u *entity.User) (*entity.User, error) {
			created := *u
			created.ID = "uid-1"

			return &created, nil
		})

	out, err := fx.service.SignUp(ctx, validSignUpInput())

	require.NoError(t, err)
	assert.Equal(t, "uid-1", out.User.ID)
	assert.Equal(t, entity.UserTypeCustomer, out.User.Type)
}

func TestAuthService_SignUp_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SignUpInput)
		wantErr error
		wantMsg string
	}{
		{
			name: "email checked before everything else",
			mutate: func(in *usecase.SignUpInput) {
				in.Email = "not-an-email"
				in.Password = "x"
				in.Phone = "1"
			},
			wantErr: domainerrors.ErrInvalidEmail,
			wantMsg: "enter a valid email address",
		},
		{
			name: "password before national id",
			mutate: func(in *usecase.SignUpInput) {
				in.Password = "12345"
				in.NationalID = "abc"
			},
			wantErr: domainerrors.ErrInvalidPassword,
			wantMsg: "password must be at least 6 characters",
		},
		{
			name:    "national id before phone",
			mutate:  func(in *usecase.SignUpInput) { in.NationalID = "12345678901"; in.Phone = "12" },
			wantErr: domainerrors.ErrInvalidNationalID,
			wantMsg: "national id must contain only digits (max 10)",
		},
		{
			name:    "phone",
			mutate:  func(in *usecase.SignUpInput) { in.Phone = "300123456" },
			wantErr: domainerrors.ErrInvalidPhone,
			wantMsg: "phone number must have 10 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := validSignUpInput()
			tt.mutate(&input)

			_, err := fx.service.SignUp(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestAuthService_SignUp_ProfilePersistenceFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		SignUp(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrProfilePersistenceFailed.WithDetails("write refused"))

	_, err := fx.service.SignUp(ctx, validSignUpInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfilePersistenceFailed)
}

func TestAuthService_SignUp_EmailAlreadyInUse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		SignUp(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &service.ProviderError{Kind: service.ProviderErrEmailExists, Message: "EMAIL_EXISTS"})

	_, err := fx.service.SignUp(ctx, validSignUpInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
	assert.Contains(t, err.Error(), "EMAIL_EXISTS")
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "uid-1", FirstName: "Ana", LastName: "Gomez"}
	session := &entity.Session{UserID: "uid-1", IDToken: "token"}

	fx.authRepo.EXPECT().SignIn(ctx, "ana@example.com", "secret1").Return(user, session, nil)

	out, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "ana@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, session, out.Session)
	assert.Equal(t, "Welcome back, Ana Gomez", out.Message)
}

func TestAuthService_SignIn_ProviderErrors(t *testing.T) {
	tests := []struct {
		kind    service.ProviderErrorKind
		wantErr error
	}{
		{service.ProviderErrInvalidCredentials, domainerrors.ErrInvalidCredentials},
		{service.ProviderErrUserNotFound, domainerrors.ErrInvalidCredentials},
		{service.ProviderErrUserDisabled, domainerrors.ErrUserDisabled},
		{service.ProviderErrTooManyRequests, domainerrors.ErrTooManyRequests},
		{service.ProviderErrUnknown, domainerrors.ErrIdentityProvider},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.authRepo.EXPECT().
				SignIn(ctx, "ana@example.com", "secret1").
				Return(nil, nil, &service.ProviderError{Kind: tt.kind, Message: "provider says no"})

			_, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "ana@example.com", Password: "secret1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			appErr, ok := errors.AsType[*domainerrors.BaseError](err)
			require.True(t, ok)
			assert.Equal(t, "provider says no", appErr.Details())
		})
	}
}

func TestAuthService_SignIn_MissingProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().SignIn(ctx, "ana@example.com", "secret1").Return(nil, nil, repository.ErrUserNotFound)

	_, err := fx.service.SignIn(ctx, usecase.SignInInput{Email: "ana@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_SignIn_EmptyPassword(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignIn(context.Background(), usecase.SignInInput{Email: "ana@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

func TestAuthService_ResetPassword_UnknownEmailIsGeneric(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		ResetPassword(ctx, "ghost@example.com").
		Return(&service.ProviderError{Kind: service.ProviderErrUserNotFound, Message: "EMAIL_NOT_FOUND"})

	unknown, err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Email: "ghost@example.com"})
	require.NoError(t, err)

	fx.authRepo.EXPECT().ResetPassword(ctx, "ana@example.com").Return(nil)

	known, err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Email: "ana@example.com"})
	require.NoError(t, err)

	assert.Equal(t, known, unknown)
}

func TestAuthService_ResetPassword_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().
		ResetPassword(ctx, "ana@example.com").
		Return(&service.ProviderError{Kind: service.ProviderErrTooManyRequests, Message: "TOO_MANY_ATTEMPTS_TRY_LATER"})

	_, err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{Email: "ana@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}

func TestAuthService_SignOut(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().CurrentUserID().Return("uid-1", true)
	fx.authRepo.EXPECT().SignOut(ctx).Return(nil)

	out, err := fx.service.SignOut(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Session closed successfully", out.Message)
}

func TestAuthService_SignOut_Failure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().CurrentUserID().Return("", false)
	fx.authRepo.EXPECT().SignOut(ctx).Return(errors.New("keychain locked"))

	_, err := fx.service.SignOut(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrSignOutFailed)
}

func TestAuthService_ObserveAuthState_PassesThrough(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	states := make(chan entity.AuthState, 1)
	states <- entity.Authenticated(&entity.User{ID: "uid-1"})
	fx.authRepo.EXPECT().AuthStates(ctx).Return((<-chan entity.AuthState)(states), func() {})

	ch, cancel := fx.service.ObserveAuthState(ctx)
	defer cancel()

	state := <-ch
	assert.Equal(t, entity.AuthStatusAuthenticated, state.Status)
	assert.Equal(t, "uid-1", state.User.ID)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().GetUser(ctx, "uid-1").Return(&entity.User{ID: "uid-1", City: "Salento", Phone: "3001234567"}, nil)
	fx.authRepo.EXPECT().
		UpdateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.City == "Armenia" && u.Phone == "3109876543"
		})).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: "uid-1",
		City:   "Armenia",
		Phone:  "3109876543",
	})

	require.NoError(t, err)
	assert.Equal(t, "Armenia", user.City)
}

func TestAuthService_UpdateProfile_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().GetUser(ctx, "uid-1").Return(&entity.User{ID: "uid-1"}, nil)

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: "uid-1", Phone: "12ab"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().GetUser(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
