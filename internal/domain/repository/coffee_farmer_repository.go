package repository

import (
	"context"
	"time"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/errors"
)

// ErrFarmerNotFound is returned when a farmer id does not exist.
var ErrFarmerNotFound = errors.New("coffee farmer not found")

// CoffeeFarmerRepository defines the operations on coffee farmer profiles.
type CoffeeFarmerRepository interface {
	// FetchByID returns the farmer or ErrFarmerNotFound.
	FetchByID(ctx context.Context, id string) (*entity.CoffeeFarmer, error)

	// FetchByUserID returns the farmer profile owned by userID or ErrFarmerNotFound.
	FetchByUserID(ctx context.Context, userID string) (*entity.CoffeeFarmer, error)

	// FetchApprovedByTown returns approved farmers of a town ordered by rating, best first.
	FetchApprovedByTown(ctx context.Context, townID string) ([]*entity.CoffeeFarmer, error)

	// FetchApproved returns every approved farmer ordered by rating, best first.
	FetchApproved(ctx context.Context) ([]*entity.CoffeeFarmer, error)

	// Search returns approved farmers whose farm name or description contains
	// query, ignoring case, ordered by rating.
	Search(ctx context.Context, query string) ([]*entity.CoffeeFarmer, error)

	// FetchTopRated returns at most limit approved farmers, best rated first.
	FetchTopRated(ctx context.Context, limit int) ([]*entity.CoffeeFarmer, error)

	// FetchByStatus returns farmers in status, newest application first.
	FetchByStatus(ctx context.Context, status entity.FarmerStatus) ([]*entity.CoffeeFarmer, error)

	// Create stores a new farmer application under farmer.ID.
	Create(ctx context.Context, farmer *entity.CoffeeFarmer) error

	// Save creates or replaces a farmer profile.
	Save(ctx context.Context, farmer *entity.CoffeeFarmer) error

	// UpdateProfile merges the owner editable fields of farmer into the
	// stored profile. Status, verification, town and counters are untouched.
	UpdateProfile(ctx context.Context, farmer *entity.CoffeeFarmer) error

	// UpdateStatus writes a status change together with its verification
	// fields. reason is stored only when non-empty.
	UpdateStatus(ctx context.Context, id string, status entity.FarmerStatus, isVerified bool, verifiedAt time.Time, reason string) error

	// Changes delivers every fetched farmer list to subscribers. Values are
	// not replayed. The returned func unsubscribes.
	Changes() (<-chan []*entity.CoffeeFarmer, func())
}
