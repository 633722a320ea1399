package handler

import (
	"net/http"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoritesHandlerParams holds dependencies for FavoritesHandler, injected by Fx.
type FavoritesHandlerParams struct {
	fx.In

	FavoritesUC usecase.FavoritesUsecase
}

// FavoritesHandler serves the authenticated user's favorite coffees.
type FavoritesHandler struct {
	favoritesUC usecase.FavoritesUsecase
}

// NewFavoritesHandler is the constructor for FavoritesHandler
func NewFavoritesHandler(params FavoritesHandlerParams) *FavoritesHandler {
	return &FavoritesHandler{favoritesUC: params.FavoritesUC}
}

// FavoriteStatusResponse reports membership after an action.
type FavoriteStatusResponse struct {
	CoffeeID   string                `json:"coffeeId"`
	Action     entity.FavoriteAction `json:"action"`
	IsFavorite bool                  `json:"isFavorite"`
}

// ListFavorites returns the favorite coffees, newest first.
func (h *FavoritesHandler) ListFavorites(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	coffees, err := h.favoritesUC.ListFavoriteCoffees(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(coffees))
}

// IsFavorite reports whether the coffee is a favorite.
func (h *FavoritesHandler) IsFavorite(c echo.Context) error {
	return h.manage(c, entity.FavoriteActionQuery)
}

// AddFavorite adds the coffee to the favorites.
func (h *FavoritesHandler) AddFavorite(c echo.Context) error {
	return h.manage(c, entity.FavoriteActionAdd)
}

// RemoveFavorite removes the coffee from the favorites.
func (h *FavoritesHandler) RemoveFavorite(c echo.Context) error {
	return h.manage(c, entity.FavoriteActionRemove)
}

// ToggleFavorite flips the coffee's membership.
func (h *FavoritesHandler) ToggleFavorite(c echo.Context) error {
	return h.manage(c, entity.FavoriteActionToggle)
}

func (h *FavoritesHandler) manage(c echo.Context, action entity.FavoriteAction) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	coffeeID := c.Param("coffeeId")
	output, err := h.favoritesUC.ManageFavorites(c.Request().Context(), usecase.ManageFavoritesInput{
		Action:   action,
		CoffeeID: coffeeID,
		UserID:   userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, FavoriteStatusResponse{
		CoffeeID:   coffeeID,
		Action:     output.Action,
		IsFavorite: output.IsFavorite,
	}, output.Message)
}
