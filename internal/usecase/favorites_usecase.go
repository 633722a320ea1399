package usecase

import (
	"context"

	"townscoffee/internal/domain/entity"
)

// ManageFavoritesInput names the action and the favorite it applies to.
type ManageFavoritesInput struct {
	Action   entity.FavoriteAction
	CoffeeID string
	UserID   string
}

// ManageFavoritesOutput reports membership after the action.
type ManageFavoritesOutput struct {
	Action     entity.FavoriteAction
	IsFavorite bool
	Message    string
}

// FavoritesUsecase defines the operations on a user's favorite coffees.
type FavoritesUsecase interface {
	ManageFavorites(ctx context.Context, input ManageFavoritesInput) (*ManageFavoritesOutput, error)
	ListFavoriteCoffees(ctx context.Context, userID string) ([]*entity.Coffee, error)
}
