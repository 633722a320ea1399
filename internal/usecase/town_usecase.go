package usecase

import (
	"context"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
)

// TownSortKey selects the order of a town list.
type TownSortKey string

const (
	// TownSortByName sorts by name ascending.
	TownSortByName TownSortKey = "name"
	// TownSortByCoffeeCount sorts by coffee count descending.
	TownSortByCoffeeCount TownSortKey = "coffeeCount"
	// TownSortByFarmerCount sorts by farmer count descending.
	TownSortByFarmerCount TownSortKey = "farmerCount"
)

// ParseTownSortKey decodes a sort key; empty selects TownSortByName.
func ParseTownSortKey(s string) (TownSortKey, error) {
	switch key := TownSortKey(s); key {
	case "":
		return TownSortByName, nil
	case TownSortByName, TownSortByCoffeeCount, TownSortByFarmerCount:
		return key, nil
	default:
		return "", domainerrors.ErrInvalidArgument.WithDetails("unknown town sort key " + s)
	}
}

// GetTownsInput selects towns. A non-blank SearchQuery wins over Department;
// the two are never combined.
type GetTownsInput struct {
	Department  string
	SearchQuery string
	SortBy      TownSortKey
}

// GetTownsOutput returns the sorted towns.
type GetTownsOutput struct {
	Towns      []*entity.Town
	TotalCount int
}

// GetTownDetailOutput returns a town with its coffees and approved farmers.
type GetTownDetailOutput struct {
	Town    *entity.Town
	Coffees []*entity.Coffee
	Farmers []*entity.CoffeeFarmer
}

// GetTopTownsInput selects the ranking and its size.
type GetTopTownsInput struct {
	By    TownSortKey
	Limit int
}

// TownUsecase defines the town queries.
type TownUsecase interface {
	GetTowns(ctx context.Context, input GetTownsInput) (*GetTownsOutput, error)
	GetTownDetail(ctx context.Context, townID string) (*GetTownDetailOutput, error)
	GetTopTowns(ctx context.Context, input GetTopTownsInput) ([]*entity.Town, error)
}
