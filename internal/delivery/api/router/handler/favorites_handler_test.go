package handler

import (
	"net/http"
	"testing"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	mockUC "townscoffee/internal/mocks/usecase"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoritesHandler_ActionsPerRoute(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		handler func(h *FavoritesHandler) echo.HandlerFunc
		action  entity.FavoriteAction
	}{
		{name: "query", method: http.MethodGet, handler: func(h *FavoritesHandler) echo.HandlerFunc { return h.IsFavorite }, action: entity.FavoriteActionQuery},
		{name: "add", method: http.MethodPut, handler: func(h *FavoritesHandler) echo.HandlerFunc { return h.AddFavorite }, action: entity.FavoriteActionAdd},
		{name: "remove", method: http.MethodDelete, handler: func(h *FavoritesHandler) echo.HandlerFunc { return h.RemoveFavorite }, action: entity.FavoriteActionRemove},
		{name: "toggle", method: http.MethodPost, handler: func(h *FavoritesHandler) echo.HandlerFunc { return h.ToggleFavorite }, action: entity.FavoriteActionToggle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favoritesUC := mockUC.NewMockFavoritesUsecase(t)
			h := NewFavoritesHandler(FavoritesHandlerParams{FavoritesUC: favoritesUC})

			favoritesUC.EXPECT().ManageFavorites(mock.Anything, usecase.ManageFavoritesInput{
				Action:   tt.action,
				CoffeeID: "c1",
				UserID:   "uid-1",
			}).Return(&usecase.ManageFavoritesOutput{Action: tt.action, IsFavorite: true, Message: "ok"}, nil)

			rec, env := serve(t, tt.handler(h), call{
				method: tt.method,
				target: "/api/v1/favorites/c1",
				params: map[string]string{"coffeeId": "c1"},
				userID: "uid-1",
			})

			require.Equal(t, http.StatusOK, rec.Code)
			status := decodeData[FavoriteStatusResponse](t, env)
			assert.Equal(t, "c1", status.CoffeeID)
			assert.Equal(t, tt.action, status.Action)
			assert.True(t, status.IsFavorite)
		})
	}
}

func TestFavoritesHandler_RequiresUser(t *testing.T) {
	h := NewFavoritesHandler(FavoritesHandlerParams{FavoritesUC: mockUC.NewMockFavoritesUsecase(t)})

	rec, env := serve(t, h.ListFavorites, call{method: http.MethodGet, target: "/api/v1/favorites"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), env.Error.Code)
}

func TestFavoritesHandler_ListFavorites(t *testing.T) {
	favoritesUC := mockUC.NewMockFavoritesUsecase(t)
	h := NewFavoritesHandler(FavoritesHandlerParams{FavoritesUC: favoritesUC})

	favoritesUC.EXPECT().ListFavoriteCoffees(mock.Anything, "uid-1").
		Return([]*entity.Coffee{{ID: "c2", IsFavorite: true}}, nil)

	rec, env := serve(t, h.ListFavorites, call{method: http.MethodGet, target: "/api/v1/favorites", userID: "uid-1"})

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[listData[entity.Coffee]](t, env)
	require.Len(t, list.Items, 1)
	assert.True(t, list.Items[0].IsFavorite)
}
