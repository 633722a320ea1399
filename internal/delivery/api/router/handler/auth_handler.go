package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign up, sign in and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignUpRequest is the body of POST /auth/signup. Field rules beyond presence
// are enforced by the use case.
type SignUpRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Phone      string `json:"phone"`
	State      string `json:"state"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	Address    string `json:"address"`
	BirthDate  string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// SessionResponse carries the tokens of a password sign in.
type SessionResponse struct {
	User         *entity.User `json:"user"`
	IDToken      string       `json:"idToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
}

// ResetPasswordResponse is identical for known and unknown addresses.
type ResetPasswordResponse struct {
	EmailSent bool `json:"emailSent"`
}

// SignUp handles customer registration.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		State:      req.State,
		City:       req.City,
		ZipCode:    req.ZipCode,
		Address:    req.Address,
		BirthDate:  birthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, output.User, output.Message)
}

// SignIn handles password sign in.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign in input")
	}

	output, err := h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, SessionResponse{
		User:         output.User,
		IDToken:      output.Session.IDToken,
		RefreshToken: output.Session.RefreshToken,
		ExpiresAt:    output.Session.ExpiresAt,
	}, output.Message)
}

// ResetPassword sends a reset e-mail when the address is registered.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}

	output, err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{Email: req.Email})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, ResetPasswordResponse{EmailSent: output.EmailSent}, output.Message)
}

// SignOut closes the local session.
func (h *AuthHandler) SignOut(c echo.Context) error {
	output, err := h.authUC.SignOut(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, nil, output.Message)
}

// StreamAuthState writes the caller's authentication states as server-sent
// events until the client disconnects. States of other users are reported as
// unauthenticated.
func (h *AuthHandler) StreamAuthState(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	viewerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	states, stop := h.authUC.ObserveAuthState(ctx)
	defer stop()

	res := c.Response()
	// The stream outlives the server write timeout.
	if err := http.NewResponseController(res).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Write deadline not adjustable", slog.Any("error", err))
	}
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)

	for state := range states {
		data, err := json.Marshal(scopeAuthState(state, viewerID))
		if err != nil {
			logger.Warn("Failed to encode auth state", slog.Any("error", err))

			continue
		}
		if _, err := fmt.Fprintf(res, "event: auth\ndata: %s\n\n", data); err != nil {
			return nil
		}
		res.Flush()
	}

	return nil
}

// scopeAuthState hides every state that does not belong to viewerID.
func scopeAuthState(state entity.AuthState, viewerID string) entity.AuthState {
	switch state.Status {
	case entity.AuthStatusAuthenticated:
		if state.User != nil && state.User.ID == viewerID {
			return state
		}
	case entity.AuthStatusLoading:
		return state
	}

	return entity.Unauthenticated()
}

func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("birthDate: expected YYYY-MM-DD")
	}

	return date, nil
}
