// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"townscoffee/config"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/domain/validation"
	"townscoffee/internal/errors"
	"townscoffee/internal/usecase"

	"go.uber.org/fx"
)

const resetPasswordMessage = "If an account exists for this email, a password reset link has been sent"

// authService implements the AuthUsecase interface.
type authService struct {
	authRepo          repository.AuthRepository
	analytics         service.AnalyticsSink
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AuthRepo  repository.AuthRepository
	Analytics service.AnalyticsSink `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minPasswordLength := validation.DefaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &authService{
		authRepo:          params.AuthRepo,
		analytics:         params.Analytics,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
	}
}

// SignUp validates the registration data and creates a customer account.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if err := srv.validateSignUp(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	user := &entity.User{
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		NationalID: strings.TrimSpace(input.NationalID),
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		State:      strings.TrimSpace(input.State),
		City:       strings.TrimSpace(input.City),
		ZipCode:    strings.TrimSpace(input.ZipCode),
		Address:    strings.TrimSpace(input.Address),
		BirthDate:  input.BirthDate,
		Type:       entity.UserTypeCustomer,
	}

	created, err := srv.authRepo.SignUp(ctx, email, input.Password, user)
	if err != nil {
		logger.Warn("Sign up failed", slog.Any("error", err))

		return nil, errors.Wrap(mapProviderError(err), "failed to sign up")
	}

	logger.Info("User registered", slog.String("user_id", created.ID))
	track(ctx, srv.analytics, service.EventSignUp, created.ID, map[string]string{"method": "email"})

	return &usecase.SignUpOutput{
		User:    created,
		Message: "Account created successfully",
	}, nil
}

func (srv *authService) validateSignUp(input usecase.SignUpInput) error {
	if res := validation.Email(input.Email); !res.Valid {
		return domainerrors.ErrInvalidEmail.WithMessage(res.Message)
	}
	if res := validation.Password(input.Password, srv.minPasswordLength); !res.Valid {
		return domainerrors.ErrInvalidPassword.WithMessage(res.Message)
	}
	if res := validation.NationalID(input.NationalID); !res.Valid {
		return domainerrors.ErrInvalidNationalID.WithMessage(res.Message)
	}
	if res := validation.Phone(input.Phone); !res.Valid {
		return domainerrors.ErrInvalidPhone.WithMessage(res.Message)
	}

	return nil
}

// SignIn verifies the credentials and loads the user's profile.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if res := validation.Email(input.Email); !res.Valid {
		return nil, domainerrors.ErrInvalidEmail.WithMessage(res.Message)
	}
	if input.Password == "" {
		return nil, domainerrors.ErrInvalidPassword.WithMessage("password is required")
	}

	user, session, err := srv.authRepo.SignIn(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("no profile for the signed-in account")
		}
		logger.Info("Sign in rejected", slog.Any("error", err))

		return nil, errors.Wrap(mapProviderError(err), "failed to sign in")
	}

	track(ctx, srv.analytics, service.EventLogin, user.ID, map[string]string{"method": "email"})

	return &usecase.SignInOutput{
		User:    user,
		Session: session,
		Message: "Welcome back, " + user.FullName(),
	}, nil
}

// ResetPassword sends a reset e-mail. The answer does not reveal whether the
// address is registered.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.ResetPasswordOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if res := validation.Email(input.Email); !res.Valid {
		return nil, domainerrors.ErrInvalidEmail.WithMessage(res.Message)
	}

	email := strings.TrimSpace(input.Email)
	if err := srv.authRepo.ResetPassword(ctx, email); err != nil {
		if !isProviderErrorKind(err, service.ProviderErrUserNotFound) {
			return nil, errors.Wrap(mapProviderError(err), "failed to send password reset")
		}
		logger.Debug("Password reset requested for unknown email")
	}

	track(ctx, srv.analytics, service.EventPasswordReset, "", nil)

	return &usecase.ResetPasswordOutput{
		Message:   resetPasswordMessage,
		EmailSent: true,
	}, nil
}

// SignOut clears the local session.
func (srv *authService) SignOut(ctx context.Context) (*usecase.SignOutOutput, error) {
	userID, _ := srv.authRepo.CurrentUserID()

	if err := srv.authRepo.SignOut(ctx); err != nil {
		return nil, domainerrors.ErrSignOutFailed.WithDetails(err.Error())
	}

	track(ctx, srv.analytics, service.EventLogout, userID, nil)

	return &usecase.SignOutOutput{Message: "Session closed successfully"}, nil
}

// ObserveAuthState passes the repository's state stream through unchanged.
func (srv *authService) ObserveAuthState(ctx context.Context) (<-chan entity.AuthState, func()) {
	return srv.authRepo.AuthStates(ctx)
}

// GetProfile returns the stored profile of userID.
func (srv *authService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("user id is required")
	}

	user, err := srv.authRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile validates and merges the editable profile fields.
func (srv *authService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	user, err := srv.GetProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.NationalID != "" {
		if res := validation.NationalID(input.NationalID); !res.Valid {
			return nil, domainerrors.ErrInvalidNationalID.WithMessage(res.Message)
		}
		user.NationalID = strings.TrimSpace(input.NationalID)
	}
	if input.Phone != "" {
		if res := validation.Phone(input.Phone); !res.Valid {
			return nil, domainerrors.ErrInvalidPhone.WithMessage(res.Message)
		}
		user.Phone = strings.TrimSpace(input.Phone)
	}

	setIfPresent(&user.FirstName, input.FirstName)
	setIfPresent(&user.LastName, input.LastName)
	setIfPresent(&user.State, input.State)
	setIfPresent(&user.City, input.City)
	setIfPresent(&user.ZipCode, input.ZipCode)
	setIfPresent(&user.Address, input.Address)
	if !input.BirthDate.IsZero() {
		user.BirthDate = input.BirthDate
	}

	if err := srv.authRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	logger.Info("User profile updated", slog.String("user_id", user.ID))

	return user, nil
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
