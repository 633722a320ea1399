package docrepo

import (
	"context"
	"testing"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/infra/persistence/memory"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFarmer(id, userID, townID string, status entity.FarmerStatus, rating float64, applied time.Time) *entity.CoffeeFarmer {
	return &entity.CoffeeFarmer{
		ID:              id,
		UserID:          userID,
		FarmName:        "Finca " + id,
		TownID:          townID,
		Location:        orb.Point{-75.6, 4.6},
		Status:          status,
		Rating:          rating,
		ApplicationDate: applied,
	}
}

func seedFarmers(t *testing.T) repository.CoffeeFarmerRepository {
	t.Helper()

	repo := NewCoffeeFarmerRepository(memory.NewStore())
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	farmers := []*entity.CoffeeFarmer{
		newFarmer("f1", "u1", "t1", entity.FarmerStatusApproved, 4.1, day),
		newFarmer("f2", "u2", "t1", entity.FarmerStatusApproved, 4.8, day.AddDate(0, 0, 1)),
		newFarmer("f3", "u3", "t1", entity.FarmerStatusPending, 0, day.AddDate(0, 0, 2)),
		newFarmer("f4", "u4", "t2", entity.FarmerStatusPending, 0, day.AddDate(0, 0, 3)),
	}
	for _, farmer := range farmers {
		require.NoError(t, repo.Create(context.Background(), farmer))
	}

	return repo
}

func farmerIDs(farmers []*entity.CoffeeFarmer) []string {
	ids := make([]string, 0, len(farmers))
	for _, farmer := range farmers {
		ids = append(ids, farmer.ID)
	}

	return ids
}

func TestCoffeeFarmerRepository_CreateRejectsTakenID(t *testing.T) {
	repo := seedFarmers(t)

	err := repo.Create(context.Background(), newFarmer("f1", "u9", "t1", entity.FarmerStatusPending, 0, time.Now()))

	assert.ErrorIs(t, err, domainerrors.ErrFarmerApplicationExists)
}

func TestCoffeeFarmerRepository_FetchByUserID(t *testing.T) {
	repo := seedFarmers(t)
	ctx := context.Background()

	farmer, err := repo.FetchByUserID(ctx, "u3")
	require.NoError(t, err)
	assert.Equal(t, "f3", farmer.ID)
	assert.Equal(t, entity.FarmerStatusPending, farmer.Status)
	assert.InDelta(t, -75.6, farmer.Location.Lon(), 1e-9)

	_, err = repo.FetchByUserID(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrFarmerNotFound)
}

func TestCoffeeFarmerRepository_Listings(t *testing.T) {
	repo := seedFarmers(t)
	ctx := context.Background()

	approved, err := repo.FetchApprovedByTown(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"f2", "f1"}, farmerIDs(approved))

	pending, err := repo.FetchByStatus(ctx, entity.FarmerStatusPending)
	require.NoError(t, err)
	assert.Equal(t, []string{"f4", "f3"}, farmerIDs(pending))
}

func TestCoffeeFarmerRepository_UpdateStatus(t *testing.T) {
	repo := seedFarmers(t)
	ctx := context.Background()
	resolvedAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.UpdateStatus(ctx, "f3", entity.FarmerStatusRejected, false, resolvedAt, "missing documents"))

	farmer, err := repo.FetchByID(ctx, "f3")
	require.NoError(t, err)
	assert.Equal(t, entity.FarmerStatusRejected, farmer.Status)
	assert.False(t, farmer.IsVerified)
	require.NotNil(t, farmer.VerificationDate)
	assert.True(t, resolvedAt.Equal(*farmer.VerificationDate))
	assert.Equal(t, "missing documents", farmer.RejectionReason)
	assert.Equal(t, "Finca f3", farmer.FarmName)

	require.NoError(t, repo.UpdateStatus(ctx, "f4", entity.FarmerStatusApproved, true, resolvedAt, ""))

	farmer, err = repo.FetchByID(ctx, "f4")
	require.NoError(t, err)
	assert.True(t, farmer.IsVerified)
	assert.Empty(t, farmer.RejectionReason)
}

func TestCoffeeFarmerRepository_UpdateStatusNotFound(t *testing.T) {
	repo := seedFarmers(t)

	err := repo.UpdateStatus(context.Background(), "missing", entity.FarmerStatusApproved, true, time.Now(), "")

	assert.ErrorIs(t, err, repository.ErrFarmerNotFound)
}

func TestCoffeeFarmerRepository_ApprovedListings(t *testing.T) {
	repo := seedFarmers(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newFarmer("f5", "u5", "t2", entity.FarmerStatusApproved, 4.5, time.Now())))

	approved, err := repo.FetchApproved(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"f2", "f5", "f1"}, farmerIDs(approved))

	top, err := repo.FetchTopRated(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"f2", "f5"}, farmerIDs(top))
}

func TestCoffeeFarmerRepository_Search(t *testing.T) {
	repo := seedFarmers(t)
	ctx := context.Background()
	described := newFarmer("f5", "u5", "t2", entity.FarmerStatusApproved, 4.5, time.Now())
	described.FarmName = "La Cumbre"
	described.FarmDescription = "Shade grown GEISHA on volcanic soil"
	require.NoError(t, repo.Create(ctx, described))
	hidden := newFarmer("f6", "u6", "t2", entity.FarmerStatusPending, 0, time.Now())
	hidden.FarmDescription = "geisha lots"
	require.NoError(t, repo.Create(ctx, hidden))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name ignores case", query: "FINCA", want: []string{"f2", "f1"}},
		{name: "description", query: "geisha", want: []string{"f5"}},
		{name: "pending farmers are hidden", query: "f3", want: []string{}},
		{name: "no match", query: "tea", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			farmers, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, farmerIDs(farmers))
		})
	}
}

func TestCoffeeFarmerRepository_UpdateProfile(t *testing.T) {
	repo := seedFarmers(t)
	ctx := context.Background()

	farmer, err := repo.FetchByID(ctx, "f1")
	require.NoError(t, err)
	farmer.FarmName = "Finca Nueva"
	farmer.Hectares = 8.5
	farmer.CoffeeTypes = []string{"arabica"}
	farmer.Location = orb.Point{-75.7, 4.7}
	farmer.Status = entity.FarmerStatusSuspended
	farmer.Rating = 1
	farmer.TownID = "t2"

	require.NoError(t, repo.UpdateProfile(ctx, farmer))

	stored, err := repo.FetchByID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "Finca Nueva", stored.FarmName)
	assert.InDelta(t, 8.5, stored.Hectares, 0)
	assert.Equal(t, []string{"arabica"}, stored.CoffeeTypes)
	assert.InDelta(t, 4.7, stored.Location.Lat(), 1e-9)
	assert.Equal(t, entity.FarmerStatusApproved, stored.Status)
	assert.InDelta(t, 4.1, stored.Rating, 0)
	assert.Equal(t, "t1", stored.TownID)

	assert.ErrorIs(t, repo.UpdateProfile(ctx, newFarmer("missing", "u9", "t1", entity.FarmerStatusApproved, 0, time.Now())), repository.ErrFarmerNotFound)
}

func TestCoffeeFarmerRepository_ChangesDeliversSearchResults(t *testing.T) {
	repo := seedFarmers(t)

	changes, unsubscribe := repo.Changes()
	defer unsubscribe()

	_, err := repo.Search(context.Background(), "f2")
	require.NoError(t, err)

	farmers, ok := receive(changes)
	require.True(t, ok)
	assert.Equal(t, []string{"f2"}, farmerIDs(farmers))
}
