package repository

import (
	"context"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/errors"
)

// ErrCoffeeNotFound is returned when a coffee id does not exist.
var ErrCoffeeNotFound = errors.New("coffee not found")

// CoffeeRepository defines the operations on coffees and the per-user
// favorites relation.
type CoffeeRepository interface {
	// FetchAll returns all coffees ordered by rating, best first.
	FetchAll(ctx context.Context) ([]*entity.Coffee, error)

	// FetchByID returns the coffee or ErrCoffeeNotFound.
	FetchByID(ctx context.Context, id string) (*entity.Coffee, error)

	// FetchByTown returns the coffees of a town ordered by rating, best first.
	FetchByTown(ctx context.Context, townID string) ([]*entity.Coffee, error)

	// FetchByFarmer returns the coffees of a farmer ordered by rating, best first.
	FetchByFarmer(ctx context.Context, farmerID string) ([]*entity.Coffee, error)

	// FetchByType returns the coffees of a species ordered by rating, best first.
	FetchByType(ctx context.Context, coffeeType entity.CoffeeType) ([]*entity.Coffee, error)

	// FetchByRoastLevel returns the coffees of a roast ordered by rating, best first.
	FetchByRoastLevel(ctx context.Context, roast entity.RoastLevel) ([]*entity.Coffee, error)

	// Search returns coffees whose name, description or notes contain query,
	// ignoring case.
	Search(ctx context.Context, query string) ([]*entity.Coffee, error)

	// FetchTopRated returns the limit best rated coffees.
	FetchTopRated(ctx context.Context, limit int) ([]*entity.Coffee, error)

	// Save creates or replaces a coffee.
	Save(ctx context.Context, coffee *entity.Coffee) error

	// AddFavorite records coffeeID as a favorite of userID. Adding twice
	// refreshes the added date.
	AddFavorite(ctx context.Context, userID, coffeeID string) error

	// RemoveFavorite deletes the favorite. Removing a missing favorite succeeds.
	RemoveFavorite(ctx context.Context, userID, coffeeID string) error

	// IsFavorite reports whether the favorite exists.
	IsFavorite(ctx context.Context, userID, coffeeID string) (bool, error)

	// FavoriteIDs returns the coffee ids favorited by userID, newest first.
	FavoriteIDs(ctx context.Context, userID string) ([]string, error)

	// Changes delivers every fetched coffee list to subscribers. Values are
	// not replayed. The returned func unsubscribes.
	Changes() (<-chan []*entity.Coffee, func())
}
