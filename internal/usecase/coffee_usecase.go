package usecase

import (
	"context"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
)

// CoffeeSortKey selects the order of a coffee list.
type CoffeeSortKey string

const (
	// CoffeeSortByRating sorts by rating descending.
	CoffeeSortByRating CoffeeSortKey = "rating"
	// CoffeeSortByPrice sorts by price per unit ascending.
	CoffeeSortByPrice CoffeeSortKey = "price"
	// CoffeeSortByName sorts by name ascending.
	CoffeeSortByName CoffeeSortKey = "name"
	// CoffeeSortByNewest sorts by creation date, newest first.
	CoffeeSortByNewest CoffeeSortKey = "newest"
)

// ParseCoffeeSortKey decodes a sort key; empty selects CoffeeSortByRating.
func ParseCoffeeSortKey(s string) (CoffeeSortKey, error) {
	switch key := CoffeeSortKey(s); key {
	case "":
		return CoffeeSortByRating, nil
	case CoffeeSortByRating, CoffeeSortByPrice, CoffeeSortByName, CoffeeSortByNewest:
		return key, nil
	default:
		return "", domainerrors.ErrInvalidArgument.WithDetails("unknown coffee sort key " + s)
	}
}

// GetCoffeesInput selects coffees. Only the first set filter applies, in
// this order: SearchQuery, TownID, FarmerID, Type, RoastLevel.
type GetCoffeesInput struct {
	TownID      string
	FarmerID    string
	Type        entity.CoffeeType
	RoastLevel  entity.RoastLevel
	SearchQuery string
	SortBy      CoffeeSortKey

	// ViewerUserID, when set, resolves IsFavorite for that user.
	ViewerUserID string
}

// GetCoffeesOutput returns the sorted coffees.
type GetCoffeesOutput struct {
	Coffees    []*entity.Coffee
	TotalCount int
}

// CoffeeUsecase defines the coffee queries.
type CoffeeUsecase interface {
	GetCoffees(ctx context.Context, input GetCoffeesInput) (*GetCoffeesOutput, error)
	GetCoffee(ctx context.Context, coffeeID, viewerUserID string) (*entity.Coffee, error)
	GetTopRatedCoffees(ctx context.Context, limit int) ([]*entity.Coffee, error)
}
