package docrepo

import (
	"context"
	"strings"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/errors"
	"townscoffee/internal/infra/persistence/model"
	"townscoffee/internal/infra/persistence/store"
	"townscoffee/internal/util"
)

// townRepository implements the repository.TownRepository interface.
type townRepository struct {
	store   store.Store
	changes *util.Broadcaster[[]*entity.Town]
}

// NewTownRepository is the constructor for townRepository.
func NewTownRepository(s store.Store) repository.TownRepository {
	return &townRepository{
		store:   s,
		changes: util.NewBroadcaster[[]*entity.Town](false),
	}
}

var activeTowns = store.Query{}.Where("isActive", true)

func (repo *townRepository) FetchAll(ctx context.Context) ([]*entity.Town, error) {
	return repo.list(ctx, activeTowns.Order("name", store.Asc), "failed to fetch towns")
}

func (repo *townRepository) FetchByID(ctx context.Context, id string) (*entity.Town, error) {
	var townM model.TownModel
	if err := repo.store.Get(ctx, model.TownsCollection, id, &townM); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, repository.ErrTownNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch town")
	}

	return toTownDomain(id, &townM), nil
}

func (repo *townRepository) FetchByDepartment(ctx context.Context, department string) ([]*entity.Town, error) {
	q := activeTowns.Where("department", department).Order("name", store.Asc)

	return repo.list(ctx, q, "failed to fetch towns by department")
}

// Search filters all active towns in memory; the store has no text index.
func (repo *townRepository) Search(ctx context.Context, query string) ([]*entity.Town, error) {
	towns, err := repo.query(ctx, activeTowns.Order("name", store.Asc), "failed to search towns")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Town, 0, len(towns))
	for _, town := range towns {
		if strings.Contains(strings.ToLower(town.Name), needle) ||
			strings.Contains(strings.ToLower(town.Description), needle) {
			matched = append(matched, town)
		}
	}

	repo.changes.Publish(matched)

	return matched, nil
}

func (repo *townRepository) FetchTopByCoffeeCount(ctx context.Context, limit int) ([]*entity.Town, error) {
	q := activeTowns.Order("coffeeCount", store.Desc).Take(limit)

	return repo.list(ctx, q, "failed to fetch top towns by coffee count")
}

func (repo *townRepository) FetchTopByFarmerCount(ctx context.Context, limit int) ([]*entity.Town, error) {
	q := activeTowns.Order("farmerCount", store.Desc).Take(limit)

	return repo.list(ctx, q, "failed to fetch top towns by farmer count")
}

func (repo *townRepository) Save(ctx context.Context, town *entity.Town) error {
	if err := repo.store.Set(ctx, model.TownsCollection, town.ID, fromTownDomain(town), false); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save town")
	}

	return nil
}

func (repo *townRepository) Changes() (<-chan []*entity.Town, func()) {
	return repo.changes.Subscribe()
}

func (repo *townRepository) list(ctx context.Context, q store.Query, failure string) ([]*entity.Town, error) {
	towns, err := repo.query(ctx, q, failure)
	if err != nil {
		return nil, err
	}

	repo.changes.Publish(towns)

	return towns, nil
}

func (repo *townRepository) query(ctx context.Context, q store.Query, failure string) ([]*entity.Town, error) {
	docs, err := repo.store.Query(ctx, model.TownsCollection, q)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	towns := make([]*entity.Town, 0, len(docs))
	for _, doc := range docs {
		var townM model.TownModel
		if err := doc.DataTo(&townM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, failure)
		}
		towns = append(towns, toTownDomain(doc.ID(), &townM))
	}

	return towns, nil
}
