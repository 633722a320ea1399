package repository

import (
	"context"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/errors"
)

// ErrTownNotFound is returned when a town id does not exist.
var ErrTownNotFound = errors.New("town not found")

// TownRepository defines the read and write operations on towns.
type TownRepository interface {
	// FetchAll returns all active towns ordered by name.
	FetchAll(ctx context.Context) ([]*entity.Town, error)

	// FetchByID returns the town or ErrTownNotFound.
	FetchByID(ctx context.Context, id string) (*entity.Town, error)

	// FetchByDepartment returns the active towns of a department ordered by name.
	FetchByDepartment(ctx context.Context, department string) ([]*entity.Town, error)

	// Search returns active towns whose name or description contains query,
	// ignoring case.
	Search(ctx context.Context, query string) ([]*entity.Town, error)

	// FetchTopByCoffeeCount returns the limit active towns with most coffees.
	FetchTopByCoffeeCount(ctx context.Context, limit int) ([]*entity.Town, error)

	// FetchTopByFarmerCount returns the limit active towns with most farmers.
	FetchTopByFarmerCount(ctx context.Context, limit int) ([]*entity.Town, error)

	// Save creates or replaces a town.
	Save(ctx context.Context, town *entity.Town) error

	// Changes delivers every fetched town list to subscribers. Values are not
	// replayed. The returned func unsubscribes.
	Changes() (<-chan []*entity.Town, func())
}
