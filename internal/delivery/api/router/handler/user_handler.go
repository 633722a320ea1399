package handler

import (
	"net/http"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	authUC usecase.AuthUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{authUC: params.AuthUC}
}

// UpdateProfileRequest is the body of PUT /user/profile. Empty fields keep
// their stored value.
type UpdateProfileRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	NationalID string `json:"nationalId"`
	Phone      string `json:"phone"`
	State      string `json:"state"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	Address    string `json:"address"`
	BirthDate  string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// GetProfile returns the profile of the authenticated user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile changes the profile of the authenticated user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
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

	return response.SuccessWithMessage(c, http.StatusOK, user, "Profile updated successfully")
}
