package impl

import (
	"context"
	"testing"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/errors"
	mockRepo "townscoffee/internal/mocks/repository"
	"townscoffee/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type townServiceFixtures struct {
	service    usecase.TownUsecase
	townRepo   *mockRepo.MockTownRepository
	coffeeRepo *mockRepo.MockCoffeeRepository
	farmerRepo *mockRepo.MockCoffeeFarmerRepository
}

func createTestTownService(t *testing.T) townServiceFixtures {
	townRepo := mockRepo.NewMockTownRepository(t)
	coffeeRepo := mockRepo.NewMockCoffeeRepository(t)
	farmerRepo := mockRepo.NewMockCoffeeFarmerRepository(t)

	svc := NewTownService(TownServiceParams{
		TownRepo:   townRepo,
		CoffeeRepo: coffeeRepo,
		FarmerRepo: farmerRepo,
		Analytics:  newQuietSink(t),
		Logger:     newDiscardLogger(),
	})

	return townServiceFixtures{
		service:    svc,
		townRepo:   townRepo,
		coffeeRepo: coffeeRepo,
		farmerRepo: farmerRepo,
	}
}

func townNames(towns []*entity.Town) []string {
	names := make([]string, len(towns))
	for i, town := range towns {
		names[i] = town.Name
	}

	return names
}

func TestTownService_GetTowns_SortByCoffeeCount(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	towns := []*entity.Town{
		{ID: "a", Name: "A", CoffeeCount: 3},
		{ID: "b", Name: "B", CoffeeCount: 10},
	}
	fx.townRepo.EXPECT().FetchAll(ctx).Return(towns, nil)

	out, err := fx.service.GetTowns(ctx, usecase.GetTownsInput{SortBy: usecase.TownSortByCoffeeCount})

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, townNames(out.Towns))
	assert.Equal(t, 2, out.TotalCount)
	assert.Equal(t, "A", towns[0].Name, "input slice must not be reordered")
}

func TestTownService_GetTowns_DefaultSortByNameWithIDTieBreak(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	fx.townRepo.EXPECT().FetchAll(ctx).Return([]*entity.Town{
		{ID: "3", Name: "Salento"},
		{ID: "2", Name: "Filandia"},
		{ID: "1", Name: "Salento"},
	}, nil)

	out, err := fx.service.GetTowns(ctx, usecase.GetTownsInput{})

	require.NoError(t, err)
	require.Len(t, out.Towns, 3)
	assert.Equal(t, "2", out.Towns[0].ID)
	assert.Equal(t, "1", out.Towns[1].ID)
	assert.Equal(t, "3", out.Towns[2].ID)
}

func TestTownService_GetTowns_NameSortIsByteWise(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	fx.townRepo.EXPECT().FetchAll(ctx).Return([]*entity.Town{
		{ID: "1", Name: "apple"},
		{ID: "2", Name: "Banana"},
	}, nil)

	out, err := fx.service.GetTowns(ctx, usecase.GetTownsInput{SortBy: usecase.TownSortByName})

	require.NoError(t, err)
	assert.Equal(t, []string{"Banana", "apple"}, townNames(out.Towns))
}

func TestTownService_GetTowns_SearchWinsOverDepartment(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	fx.townRepo.EXPECT().Search(ctx, "sal").Return([]*entity.Town{{ID: "1", Name: "Salento"}}, nil)

	out, err := fx.service.GetTowns(ctx, usecase.GetTownsInput{Department: "Quindio", SearchQuery: "  sal  "})

	require.NoError(t, err)
	assert.Equal(t, []string{"Salento"}, townNames(out.Towns))
}

func TestTownService_GetTowns_BlankSearchFallsBackToDepartment(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	fx.townRepo.EXPECT().FetchByDepartment(ctx, "Quindio").Return([]*entity.Town{}, nil)

	out, err := fx.service.GetTowns(ctx, usecase.GetTownsInput{Department: "Quindio", SearchQuery: "   "})

	require.NoError(t, err)
	assert.Zero(t, out.TotalCount)
}

func TestTownService_GetTowns_UnknownSortKey(t *testing.T) {
	fx := createTestTownService(t)

	_, err := fx.service.GetTowns(context.Background(), usecase.GetTownsInput{SortBy: "altitude"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestTownService_GetTownDetail_EmptyIDMakesNoStoreCall(t *testing.T) {
	fx := createTestTownService(t)

	_, err := fx.service.GetTownDetail(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTownID)
	fx.townRepo.AssertNotCalled(t, "FetchByID", mock.Anything, mock.Anything)
	fx.coffeeRepo.AssertNotCalled(t, "FetchByTown", mock.Anything, mock.Anything)
	fx.farmerRepo.AssertNotCalled(t, "FetchApprovedByTown", mock.Anything, mock.Anything)
}

func TestTownService_GetTownDetail_Success(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	town := &entity.Town{ID: "t1", Name: "Salento"}
	coffees := []*entity.Coffee{{ID: "c1", TownID: "t1"}}
	farmers := []*entity.CoffeeFarmer{{ID: "f1", TownID: "t1", Status: entity.FarmerStatusApproved}}

	fx.townRepo.EXPECT().FetchByID(mock.Anything, "t1").Return(town, nil)
	fx.coffeeRepo.EXPECT().FetchByTown(mock.Anything, "t1").Return(coffees, nil)
	fx.farmerRepo.EXPECT().FetchApprovedByTown(mock.Anything, "t1").Return(farmers, nil)

	out, err := fx.service.GetTownDetail(ctx, "t1")

	require.NoError(t, err)
	assert.Equal(t, town, out.Town)
	assert.Equal(t, coffees, out.Coffees)
	assert.Equal(t, farmers, out.Farmers)
}

func TestTownService_GetTownDetail_NotFound(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	fx.townRepo.EXPECT().FetchByID(mock.Anything, "t1").Return(nil, repository.ErrTownNotFound)
	fx.coffeeRepo.EXPECT().FetchByTown(mock.Anything, "t1").Return(nil, nil).Maybe()
	fx.farmerRepo.EXPECT().FetchApprovedByTown(mock.Anything, "t1").Return(nil, nil).Maybe()

	out, err := fx.service.GetTownDetail(ctx, "t1")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrTownNotFound)
}

func TestTownService_GetTownDetail_AnyFailureAborts(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()
	storeErr := errors.New("unavailable")

	fx.townRepo.EXPECT().FetchByID(mock.Anything, "t1").Return(&entity.Town{ID: "t1"}, nil).Maybe()
	fx.coffeeRepo.EXPECT().FetchByTown(mock.Anything, "t1").Return(nil, storeErr)
	fx.farmerRepo.EXPECT().FetchApprovedByTown(mock.Anything, "t1").Return(nil, nil).Maybe()

	out, err := fx.service.GetTownDetail(ctx, "t1")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, storeErr)
}

func TestTownService_GetTopTowns(t *testing.T) {
	fx := createTestTownService(t)
	ctx := context.Background()

	fx.townRepo.EXPECT().FetchTopByFarmerCount(ctx, 10).Return([]*entity.Town{{ID: "t1"}}, nil)

	towns, err := fx.service.GetTopTowns(ctx, usecase.GetTopTownsInput{By: usecase.TownSortByFarmerCount})

	require.NoError(t, err)
	assert.Len(t, towns, 1)

	_, err = fx.service.GetTopTowns(ctx, usecase.GetTopTownsInput{By: usecase.TownSortByName, Limit: 3})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}
