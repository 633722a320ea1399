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

// coffeeFarmerRepository implements the repository.CoffeeFarmerRepository interface.
type coffeeFarmerRepository struct {
	store   store.Store
	changes *util.Broadcaster[[]*entity.CoffeeFarmer]
}

// NewCoffeeFarmerRepository is the constructor for coffeeFarmerRepository.
func NewCoffeeFarmerRepository(s store.Store) repository.CoffeeFarmerRepository {
	return &coffeeFarmerRepository{
		store:   s,
		changes: util.NewBroadcaster[[]*entity.CoffeeFarmer](false),
	}
}

func (repo *coffeeFarmerRepository) FetchByID(ctx context.Context, id string) (*entity.CoffeeFarmer, error) {
	var farmerM model.CoffeeFarmerModel
	if err := repo.store.Get(ctx, model.CoffeeFarmersCollection, id, &farmerM); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch coffee farmer")
	}

	farmer, err := toFarmerDomain(id, &farmerM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode coffee farmer "+id)
	}

	return farmer, nil
}

func (repo *coffeeFarmerRepository) FetchByUserID(ctx context.Context, userID string) (*entity.CoffeeFarmer, error) {
	q := store.Query{}.Where(model.FarmerFieldUserID, userID).Take(1)

	farmers, err := repo.query(ctx, q, "failed to fetch coffee farmer by user")
	if err != nil {
		return nil, err
	}
	if len(farmers) == 0 {
		return nil, repository.ErrFarmerNotFound
	}

	return farmers[0], nil
}

func (repo *coffeeFarmerRepository) FetchApprovedByTown(ctx context.Context, townID string) ([]*entity.CoffeeFarmer, error) {
	q := store.Query{}.
		Where(model.FarmerFieldTownID, townID).
		Where(model.FarmerFieldStatus, entity.FarmerStatusApproved.String()).
		Order(model.FarmerFieldRating, store.Desc)

	return repo.list(ctx, q, "failed to fetch coffee farmers by town")
}

func (repo *coffeeFarmerRepository) FetchApproved(ctx context.Context) ([]*entity.CoffeeFarmer, error) {
	return repo.list(ctx, approvedFarmers(), "failed to fetch approved coffee farmers")
}

func (repo *coffeeFarmerRepository) Search(ctx context.Context, query string) ([]*entity.CoffeeFarmer, error) {
	farmers, err := repo.query(ctx, approvedFarmers(), "failed to search coffee farmers")
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	matched := make([]*entity.CoffeeFarmer, 0, len(farmers))
	for _, farmer := range farmers {
		if strings.Contains(strings.ToLower(farmer.FarmName), term) ||
			strings.Contains(strings.ToLower(farmer.FarmDescription), term) {
			matched = append(matched, farmer)
		}
	}

	repo.changes.Publish(matched)

	return matched, nil
}

func (repo *coffeeFarmerRepository) FetchTopRated(ctx context.Context, limit int) ([]*entity.CoffeeFarmer, error) {
	return repo.list(ctx, approvedFarmers().Take(limit), "failed to fetch top rated coffee farmers")
}

func (repo *coffeeFarmerRepository) FetchByStatus(ctx context.Context, status entity.FarmerStatus) ([]*entity.CoffeeFarmer, error) {
	q := store.Query{}.
		Where(model.FarmerFieldStatus, status.String()).
		Order(model.FarmerFieldApplicationDate, store.Desc)

	return repo.list(ctx, q, "failed to fetch coffee farmers by status")
}

func (repo *coffeeFarmerRepository) Create(ctx context.Context, farmer *entity.CoffeeFarmer) error {
	if err := repo.store.Create(ctx, model.CoffeeFarmersCollection, farmer.ID, fromFarmerDomain(farmer)); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domainerrors.ErrFarmerApplicationExists.WithDetails("farmer id " + farmer.ID + " is taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coffee farmer")
	}

	return nil
}

func (repo *coffeeFarmerRepository) Save(ctx context.Context, farmer *entity.CoffeeFarmer) error {
	if err := repo.store.Set(ctx, model.CoffeeFarmersCollection, farmer.ID, fromFarmerDomain(farmer), false); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save coffee farmer")
	}

	return nil
}

func (repo *coffeeFarmerRepository) UpdateProfile(ctx context.Context, farmer *entity.CoffeeFarmer) error {
	fields := map[string]any{
		model.FarmerFieldFarmName:           farmer.FarmName,
		model.FarmerFieldFarmDescription:    farmer.FarmDescription,
		model.FarmerFieldHectares:           farmer.Hectares,
		model.FarmerFieldAltitude:           farmer.Altitude,
		model.FarmerFieldCoffeeTypes:        farmer.CoffeeTypes,
		model.FarmerFieldCertifications:     farmer.Certifications,
		model.FarmerFieldImageURL:           farmer.ImageURL,
		model.FarmerFieldLatitude:           farmer.Location.Lat(),
		model.FarmerFieldLongitude:          farmer.Location.Lon(),
		model.FarmerFieldAnnualProduction:   farmer.AnnualProduction,
		model.FarmerFieldMainContact:        farmer.MainContact,
		model.FarmerFieldContactPhone:       farmer.ContactPhone,
		model.FarmerFieldContactEmail:       farmer.ContactEmail,
		model.FarmerFieldYearsOfExperience:  farmer.YearsOfExperience,
		model.FarmerFieldCultivationMethods: farmer.CultivationMethods,
	}

	if err := repo.store.Update(ctx, model.CoffeeFarmersCollection, farmer.ID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return repository.ErrFarmerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update coffee farmer profile")
	}

	return nil
}

func (repo *coffeeFarmerRepository) UpdateStatus(ctx context.Context, id string, status entity.FarmerStatus, isVerified bool, verifiedAt time.Time, reason string) error {
	fields := map[string]any{
		model.FarmerFieldStatus:           status.String(),
		model.FarmerFieldIsVerified:       isVerified,
		model.FarmerFieldVerificationDate: verifiedAt,
	}
	if reason != "" {
		fields[model.FarmerFieldRejectionReason] = reason
	}

	if err := repo.store.Update(ctx, model.CoffeeFarmersCollection, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return repository.ErrFarmerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update coffee farmer status")
	}

	return nil
}

func (repo *coffeeFarmerRepository) Changes() (<-chan []*entity.CoffeeFarmer, func()) {
	return repo.changes.Subscribe()
}

func approvedFarmers() store.Query {
	return store.Query{}.
		Where(model.FarmerFieldStatus, entity.FarmerStatusApproved.String()).
		Order(model.FarmerFieldRating, store.Desc)
}

func (repo *coffeeFarmerRepository) list(ctx context.Context, q store.Query, failure string) ([]*entity.CoffeeFarmer, error) {
	farmers, err := repo.query(ctx, q, failure)
	if err != nil {
		return nil, err
	}

	repo.changes.Publish(farmers)

	return farmers, nil
}

func (repo *coffeeFarmerRepository) query(ctx context.Context, q store.Query, failure string) ([]*entity.CoffeeFarmer, error) {
	docs, err := repo.store.Query(ctx, model.CoffeeFarmersCollection, q)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	farmers := make([]*entity.CoffeeFarmer, 0, len(docs))
	for _, doc := range docs {
		var farmerM model.CoffeeFarmerModel
		if err := doc.DataTo(&farmerM); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, failure)
		}

		farmer, err := toFarmerDomain(doc.ID(), &farmerM)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode coffee farmer "+doc.ID())
		}
		farmers = append(farmers, farmer)
	}

	return farmers, nil
}
