package impl

import (
	"context"
	"testing"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	mockRepo "townscoffee/internal/mocks/repository"
	"townscoffee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coffeeServiceFixtures struct {
	service    usecase.CoffeeUsecase
	coffeeRepo *mockRepo.MockCoffeeRepository
}

func createTestCoffeeService(t *testing.T) coffeeServiceFixtures {
	coffeeRepo := mockRepo.NewMockCoffeeRepository(t)
	svc := NewCoffeeService(CoffeeServiceParams{
		CoffeeRepo: coffeeRepo,
		Analytics:  newQuietSink(t),
		Logger:     newDiscardLogger(),
	})

	return coffeeServiceFixtures{service: svc, coffeeRepo: coffeeRepo}
}

func sampleCoffees() []*entity.Coffee {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return []*entity.Coffee{
		{ID: "c1", Name: "Geisha", PricePerUnit: 40, Rating: 4.9, CreatedDate: base},
		{ID: "c2", Name: "Castillo", PricePerUnit: 12, Rating: 4.1, CreatedDate: base.Add(48 * time.Hour)},
		{ID: "c3", Name: "Bourbon", PricePerUnit: 18, Rating: 4.5, CreatedDate: base.Add(24 * time.Hour)},
		{ID: "c4", Name: "Caturra", PricePerUnit: 12, Rating: 4.5, CreatedDate: base.Add(72 * time.Hour)},
	}
}

func coffeeIDs(coffees []*entity.Coffee) []string {
	ids := make([]string, len(coffees))
	for i, coffee := range coffees {
		ids[i] = coffee.ID
	}

	return ids
}

func TestCoffeeService_GetCoffees_Sorts(t *testing.T) {
	tests := []struct {
		sortBy usecase.CoffeeSortKey
		want   []string
	}{
		{"", []string{"c1", "c3", "c4", "c2"}},
		{usecase.CoffeeSortByRating, []string{"c1", "c3", "c4", "c2"}},
		{usecase.CoffeeSortByPrice, []string{"c2", "c4", "c3", "c1"}},
		{usecase.CoffeeSortByName, []string{"c3", "c2", "c4", "c1"}},
		{usecase.CoffeeSortByNewest, []string{"c4", "c2", "c3", "c1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			fx := createTestCoffeeService(t)
			ctx := context.Background()
			fx.coffeeRepo.EXPECT().FetchAll(ctx).Return(sampleCoffees(), nil)

			out, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{SortBy: tt.sortBy})

			require.NoError(t, err)
			assert.Equal(t, tt.want, coffeeIDs(out.Coffees))
		})
	}
}

func TestCoffeeService_GetCoffees_NameSortIsByteWise(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()
	fx.coffeeRepo.EXPECT().FetchAll(ctx).Return([]*entity.Coffee{
		{ID: "c1", Name: "apple"},
		{ID: "c2", Name: "Banana"},
	}, nil)

	out, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{SortBy: usecase.CoffeeSortByName})

	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1"}, coffeeIDs(out.Coffees))
}

func TestCoffeeService_GetCoffees_PriceAndRatingOrders(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()
	fx.coffeeRepo.EXPECT().FetchAll(ctx).Return(sampleCoffees(), nil).Times(2)

	byPrice, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{SortBy: usecase.CoffeeSortByPrice})
	require.NoError(t, err)
	for i := 1; i < len(byPrice.Coffees); i++ {
		assert.LessOrEqual(t, byPrice.Coffees[i-1].PricePerUnit, byPrice.Coffees[i].PricePerUnit)
	}

	byRating, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{SortBy: usecase.CoffeeSortByRating})
	require.NoError(t, err)
	for i := 1; i < len(byRating.Coffees); i++ {
		assert.GreaterOrEqual(t, byRating.Coffees[i-1].Rating, byRating.Coffees[i].Rating)
	}
}

func TestCoffeeService_GetCoffees_SearchIgnoresTown(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fx.coffeeRepo.EXPECT().Search(ctx, "geisha").Return([]*entity.Coffee{{ID: "c1"}}, nil)

	out, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{SearchQuery: "geisha", TownID: "t9"})

	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, coffeeIDs(out.Coffees))
	fx.coffeeRepo.AssertNotCalled(t, "FetchByTown", mock.Anything, mock.Anything)
}

func TestCoffeeService_GetCoffees_FilterPrecedence(t *testing.T) {
	t.Run("town over farmer", func(t *testing.T) {
		fx := createTestCoffeeService(t)
		ctx := context.Background()
		fx.coffeeRepo.EXPECT().FetchByTown(ctx, "t1").Return(nil, nil)

		_, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{TownID: "t1", FarmerID: "f1", Type: entity.CoffeeTypeArabica})
		require.NoError(t, err)
	})

	t.Run("farmer over type", func(t *testing.T) {
		fx := createTestCoffeeService(t)
		ctx := context.Background()
		fx.coffeeRepo.EXPECT().FetchByFarmer(ctx, "f1").Return(nil, nil)

		_, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{FarmerID: "f1", Type: entity.CoffeeTypeArabica})
		require.NoError(t, err)
	})

	t.Run("type over roast", func(t *testing.T) {
		fx := createTestCoffeeService(t)
		ctx := context.Background()
		fx.coffeeRepo.EXPECT().FetchByType(ctx, entity.CoffeeTypeRobusta).Return(nil, nil)

		_, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{Type: entity.CoffeeTypeRobusta, RoastLevel: entity.RoastLevelDark})
		require.NoError(t, err)
	})

	t.Run("roast", func(t *testing.T) {
		fx := createTestCoffeeService(t)
		ctx := context.Background()
		fx.coffeeRepo.EXPECT().FetchByRoastLevel(ctx, entity.RoastLevelVeryDark).Return(nil, nil)

		_, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{RoastLevel: entity.RoastLevelVeryDark})
		require.NoError(t, err)
	})
}

func TestCoffeeService_GetCoffees_UnknownType(t *testing.T) {
	fx := createTestCoffeeService(t)

	_, err := fx.service.GetCoffees(context.Background(), usecase.GetCoffeesInput{Type: "liberica"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestCoffeeService_GetCoffees_MarksViewerFavorites(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fx.coffeeRepo.EXPECT().FetchAll(ctx).Return(sampleCoffees(), nil)
	fx.coffeeRepo.EXPECT().FavoriteIDs(ctx, "u1").Return([]string{"c3"}, nil)

	out, err := fx.service.GetCoffees(ctx, usecase.GetCoffeesInput{ViewerUserID: "u1"})

	require.NoError(t, err)
	for _, coffee := range out.Coffees {
		assert.Equal(t, coffee.ID == "c3", coffee.IsFavorite, coffee.ID)
	}
}

func TestCoffeeService_GetCoffee(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fx.coffeeRepo.EXPECT().FetchByID(ctx, "c1").Return(&entity.Coffee{ID: "c1"}, nil)
	fx.coffeeRepo.EXPECT().IsFavorite(ctx, "u1", "c1").Return(true, nil)

	coffee, err := fx.service.GetCoffee(ctx, "c1", "u1")

	require.NoError(t, err)
	assert.True(t, coffee.IsFavorite)
}

func TestCoffeeService_GetCoffee_NotFound(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fx.coffeeRepo.EXPECT().FetchByID(ctx, "nope").Return(nil, repository.ErrCoffeeNotFound)

	_, err := fx.service.GetCoffee(ctx, "nope", "")

	assert.ErrorIs(t, err, domainerrors.ErrCoffeeNotFound)
}

func TestCoffeeService_GetTopRatedCoffees_DefaultLimit(t *testing.T) {
	fx := createTestCoffeeService(t)
	ctx := context.Background()

	fx.coffeeRepo.EXPECT().FetchTopRated(ctx, 10).Return([]*entity.Coffee{{ID: "c1"}}, nil)

	coffees, err := fx.service.GetTopRatedCoffees(ctx, 0)

	require.NoError(t, err)
	assert.Len(t, coffees, 1)
}
