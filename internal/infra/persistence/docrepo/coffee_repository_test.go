package docrepo

import (
	"context"
	"testing"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/infra/persistence/memory"
	"townscoffee/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coffeeFixture struct {
	repo  *coffeeRepository
	store *memory.Store
}

func seedCoffees(t *testing.T) *coffeeFixture {
	t.Helper()

	s := memory.NewStore()
	repo := NewCoffeeRepository(s).(*coffeeRepository)
	coffees := []*entity.Coffee{
		{ID: "c1", Name: "Geisha Reserve", Description: "Floral", Type: entity.CoffeeTypeArabica, RoastLevel: entity.RoastLevelLight, TownID: "t1", FarmerID: "f1", Rating: 4.9, Notes: []string{"jasmine", "bergamot"}},
		{ID: "c2", Name: "Robusta Fuerte", Description: "Bold cup", Type: entity.CoffeeTypeRobusta, RoastLevel: entity.RoastLevelDark, TownID: "t2", FarmerID: "f2", Rating: 3.8},
		{ID: "c3", Name: "Castillo", Description: "Balanced", Type: entity.CoffeeTypeHybrid, RoastLevel: entity.RoastLevelMedium, TownID: "t1", FarmerID: "f2", Rating: 4.2, Notes: []string{"chocolate"}},
	}
	for _, coffee := range coffees {
		require.NoError(t, repo.Save(context.Background(), coffee))
	}

	return &coffeeFixture{repo: repo, store: s}
}

func coffeeIDs(coffees []*entity.Coffee) []string {
	ids := make([]string, 0, len(coffees))
	for _, coffee := range coffees {
		ids = append(ids, coffee.ID)
	}

	return ids
}

func TestCoffeeRepository_Filters(t *testing.T) {
	fix := seedCoffees(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		fetch func() ([]*entity.Coffee, error)
		want  []string
	}{
		{
			name:  "all by rating",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.FetchAll(ctx) },
			want:  []string{"c1", "c3", "c2"},
		},
		{
			name:  "by town",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.FetchByTown(ctx, "t1") },
			want:  []string{"c1", "c3"},
		},
		{
			name:  "by farmer",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.FetchByFarmer(ctx, "f2") },
			want:  []string{"c3", "c2"},
		},
		{
			name:  "by type",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.FetchByType(ctx, entity.CoffeeTypeRobusta) },
			want:  []string{"c2"},
		},
		{
			name:  "by roast level",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.FetchByRoastLevel(ctx, entity.RoastLevelMedium) },
			want:  []string{"c3"},
		},
		{
			name:  "search ignores notes",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.Search(ctx, "Chocolate") },
			want:  []string{},
		},
		{
			name:  "search matches description",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.Search(ctx, "BALANCED") },
			want:  []string{"c3"},
		},
		{
			name:  "search matches name",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.Search(ctx, "geisha") },
			want:  []string{"c1"},
		},
		{
			name:  "top rated",
			fetch: func() ([]*entity.Coffee, error) { return fix.repo.FetchTopRated(ctx, 2) },
			want:  []string{"c1", "c3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coffees, err := tt.fetch()

			require.NoError(t, err)
			assert.Equal(t, tt.want, coffeeIDs(coffees))
		})
	}
}

func TestCoffeeRepository_FetchByID(t *testing.T) {
	fix := seedCoffees(t)
	ctx := context.Background()

	coffee, err := fix.repo.FetchByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoastLevelLight, coffee.RoastLevel)
	assert.Equal(t, []string{"jasmine", "bergamot"}, coffee.Notes)

	_, err = fix.repo.FetchByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrCoffeeNotFound)
}

func TestCoffeeRepository_UnknownEnumIsDecodeError(t *testing.T) {
	fix := seedCoffees(t)
	ctx := context.Background()

	bad := map[string]any{"name": "Liberica", "type": "liberica", "roastLevel": "dark", "rating": 1.0}
	require.NoError(t, fix.store.Set(ctx, model.CoffeesCollection, "c9", bad, false))

	_, err := fix.repo.FetchByID(ctx, "c9")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)

	var decodeErr *entity.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "liberica", decodeErr.Value)

	_, err = fix.repo.FetchAll(ctx)
	assert.ErrorAs(t, err, &decodeErr)
}

func TestCoffeeRepository_Favorites(t *testing.T) {
	fix := seedCoffees(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	fix.repo.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Minute)
	}

	require.NoError(t, fix.repo.AddFavorite(ctx, "u1", "c2"))
	require.NoError(t, fix.repo.AddFavorite(ctx, "u1", "c1"))
	require.NoError(t, fix.repo.AddFavorite(ctx, "u2", "c3"))

	ids, err := fix.repo.FavoriteIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)

	// adding again refreshes the added date
	require.NoError(t, fix.repo.AddFavorite(ctx, "u1", "c2"))
	ids, err = fix.repo.FavoriteIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1"}, ids)

	isFav, err := fix.repo.IsFavorite(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.True(t, isFav)

	require.NoError(t, fix.repo.RemoveFavorite(ctx, "u1", "c1"))
	require.NoError(t, fix.repo.RemoveFavorite(ctx, "u1", "c1"))

	isFav, err = fix.repo.IsFavorite(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.False(t, isFav)

	ids, err = fix.repo.FavoriteIDs(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"c3"}, ids)
}
