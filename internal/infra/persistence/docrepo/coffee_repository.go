package docrepo

import (
	"context"
	"strings"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/errors"
	"townscoffee/internal/infra/persistence/model"
	"townscoffee/internal/infra/persistence/store"
	"townscoffee/internal/util"
)

// coffeeRepository implements the repository.CoffeeRepository interface.
type coffeeRepository struct {
	store   store.Store
	changes *util.Broadcaster[[]*entity.Coffee]
	now     func() time.Time
}

// NewCoffeeRepository is the constructor for coffeeRepository.
func NewCoffeeRepository(s store.Store) repository.CoffeeRepository {
	return &coffeeRepository{
		store:   s,
		changes: util.NewBroadcaster[[]*entity.Coffee](false),
		now:     time.Now,
	}
}

var byRating = store.Query{}.Order("rating", store.Desc)

func (repo *coffeeRepository) FetchAll(ctx context.Context) ([]*entity.Coffee, error) {
	return repo.list(ctx, byRating, "failed to fetch coffees")
}

func (repo *coffeeRepository) FetchByID(ctx context.Context, id string) (*entity.Coffee, error) {
	var coffeeM model.CoffeeModel
	if err := repo.store.Get(ctx, model.CoffeesCollection, id, &coffeeM); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, repository.ErrCoffeeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch coffee")
	}

	coffee, err := toCoffeeDomain(id, &coffeeM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode coffee "+id)
	}

	return coffee, nil
}

func (repo *coffeeRepository) FetchByTown(ctx context.Context, townID string) ([]*entity.Coffee, error) {
	return repo.list(ctx, byRating.Where("townId", townID), "failed to fetch coffees by town")
}

func (repo *coffeeRepository) FetchByFarmer(ctx context.Context, farmerID string) ([]*entity.Coffee, error) {
	return repo.list(ctx, byRating.Where("farmerId", farmerID), "failed to fetch coffees by farmer")
}

func (repo *coffeeRepository) FetchByType(ctx context.Context, coffeeType entity.CoffeeType) ([]*entity.Coffee, error) {
	return repo.list(ctx, byRating.Where("type", coffeeType.String()), "failed to fetch coffees by type")
}

func (repo *coffeeRepository) FetchByRoastLevel(ctx context.Context, roast entity.RoastLevel) ([]*entity.Coffee, error) {
	return repo.list(ctx, byRating.Where("roastLevel", roast.String()), "failed to fetch coffees by roast level")
}

// Search filters all coffees in memory; the store has no text index.
func (repo *coffeeRepository) Search(ctx context.Context, query string) ([]*entity.Coffee, error) {
	coffees, err := repo.query(ctx, byRating, "failed to search coffees")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Coffee, 0, len(coffees))
	for _, coffee := range coffees {
		if coffeeMatches(coffee, needle) {
			matched = append(matched, coffee)
		}
	}

	repo.changes.Publish(matched)

	return matched, nil
}

func coffeeMatches(coffee *entity.Coffee, needle string) bool {
	return strings.Contains(strings.ToLower(coffee.Name), needle) ||
		strings.Contains(strings.ToLower(coffee.Description), needle)
}

func (repo *coffeeRepository) FetchTopRated(ctx context.Context, limit int) ([]*entity.Coffee, error) {
	return repo.list(ctx, byRating.Take(limit), "failed to fetch top rated coffees")
}

func (repo *coffeeRepository) Save(ctx context.Context, coffee *entity.Coffee) error {
	if err := repo.store.Set(ctx, model.CoffeesCollection, coffee.ID, fromCoffeeDomain(coffee), false); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save coffee")
	}

	return nil
}

func (repo *coffeeRepository) AddFavorite(ctx context.Context, userID, coffeeID string) error {
	favorite := &model.FavoriteModel{AddedDate: repo.now()}
	if err := repo.store.Set(ctx, model.FavoritesCollection(userID), coffeeID, favorite, false); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

func (repo *coffeeRepository) RemoveFavorite(ctx context.Context, userID, coffeeID string) error {
	if err := repo.store.Delete(ctx, model.FavoritesCollection(userID), coffeeID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove favorite")
	}

	return nil
}

func (repo *coffeeRepository) IsFavorite(ctx context.Context, userID, coffeeID string) (bool, error) {
	exists, err := repo.store.Exists(ctx, model.FavoritesCollection(userID), coffeeID)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check favorite")
	}

	return exists, nil
}

func (repo *coffeeRepository) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	q := store.Query{}.Order("addedDate", store.Desc)

	docs, err := repo.store.Query(ctx, model.FavoritesCollection(userID), q)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch favorites")
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID())
	}

	return ids, nil
}

func (repo *coffeeRepository) Changes() (<-chan []*entity.Coffee, func()) {
	return repo.changes.Subscribe()
}

func (repo *coffeeRepository) list(ctx context.Context, q store.Query, failure string) ([]*entity.Coffee, error) {
	coffees, err := repo.query(ctx, q, failure)
	if err != nil {
		return nil, err
	}

	repo.changes.Publish(coffees)

	return coffees, nil
}

func (repo *coffeeRepository) query(ctx context.Context, q store.Query, failure string) ([]*entity.Coffee, error) {
	docs, err := repo.store.Query(ctx, model.CoffeesCollection, q)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	coffees := make([]*entity.Coffee, 0, len(docs))
	for _, doc := range docs {
		var coffeeM model.CoffeeModel
		if err := doc.DataTo(&coffeeM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, failure)
		}

		coffee, err := toCoffeeDomain(doc.ID(), &coffeeM)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode coffee "+doc.ID())
		}
		coffees = append(coffees, coffee)
	}

	return coffees, nil
}
