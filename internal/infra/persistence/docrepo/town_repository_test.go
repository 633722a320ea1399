package docrepo

import (
	"context"
	"testing"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/infra/persistence/memory"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTowns(t *testing.T) repository.TownRepository {
	t.Helper()

	repo := NewTownRepository(memory.NewStore())
	towns := []*entity.Town{
		{ID: "t1", Name: "Salento", Department: "Quindio", Description: "Wax palms", CoffeeCount: 12, FarmerCount: 3, IsActive: true, Location: orb.Point{-75.57, 4.63}},
		{ID: "t2", Name: "Jardin", Department: "Antioquia", Description: "Colonial town", CoffeeCount: 30, FarmerCount: 1, IsActive: true},
		{ID: "t3", Name: "Buenavista", Department: "Quindio", Description: "Coffee viewpoint", CoffeeCount: 5, FarmerCount: 9, IsActive: true},
		{ID: "t4", Name: "Closed Town", Department: "Quindio", Description: "coffee", CoffeeCount: 99, FarmerCount: 99, IsActive: false},
	}
	for _, town := range towns {
		require.NoError(t, repo.Save(context.Background(), town))
	}

	return repo
}

func townIDs(towns []*entity.Town) []string {
	ids := make([]string, 0, len(towns))
	for _, town := range towns {
		ids = append(ids, town.ID)
	}

	return ids
}

func TestTownRepository_FetchAllSkipsInactive(t *testing.T) {
	repo := seedTowns(t)

	towns, err := repo.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t2", "t1"}, townIDs(towns))
}

func TestTownRepository_FetchByID(t *testing.T) {
	repo := seedTowns(t)
	ctx := context.Background()

	town, err := repo.FetchByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Salento", town.Name)
	assert.InDelta(t, 4.63, town.Latitude(), 1e-9)
	assert.InDelta(t, -75.57, town.Longitude(), 1e-9)

	_, err = repo.FetchByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrTownNotFound)
}

func TestTownRepository_FetchByDepartment(t *testing.T) {
	repo := seedTowns(t)

	towns, err := repo.FetchByDepartment(context.Background(), "Quindio")

	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t1"}, townIDs(towns))
}

func TestTownRepository_SearchMatchesNameAndDescription(t *testing.T) {
	repo := seedTowns(t)
	ctx := context.Background()

	towns, err := repo.Search(ctx, "COFFEE")
	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, townIDs(towns))

	towns, err = repo.Search(ctx, "sal")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, townIDs(towns))

	towns, err = repo.Search(ctx, "nothing like this")
	require.NoError(t, err)
	assert.Empty(t, towns)
}

func TestTownRepository_TopTowns(t *testing.T) {
	repo := seedTowns(t)
	ctx := context.Background()

	byCoffee, err := repo.FetchTopByCoffeeCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, townIDs(byCoffee))

	byFarmer, err := repo.FetchTopByFarmerCount(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t1", "t2"}, townIDs(byFarmer))
}

func TestTownRepository_ChangesDeliversFetchedLists(t *testing.T) {
	repo := seedTowns(t)

	changes, unsubscribe := repo.Changes()
	defer unsubscribe()

	_, err := repo.FetchByDepartment(context.Background(), "Antioquia")
	require.NoError(t, err)

	towns, ok := receive(changes)
	require.True(t, ok)
	assert.Equal(t, []string{"t2"}, townIDs(towns))
}

func TestTownRepository_StoreFailureIsPersistenceError(t *testing.T) {
	repo := NewTownRepository(&failingStore{Store: memory.NewStore(), collection: "towns"})

	err := repo.Save(context.Background(), &entity.Town{ID: "t1", Name: "Salento"})

	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
	assert.ErrorIs(t, err, errStoreDown)
}
