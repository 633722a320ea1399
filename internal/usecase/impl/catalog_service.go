package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/errors"
	"townscoffee/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	townRepo   repository.TownRepository
	coffeeRepo repository.CoffeeRepository
	farmerRepo repository.CoffeeFarmerRepository
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TownRepo   repository.TownRepository
	CoffeeRepo repository.CoffeeRepository
	FarmerRepo repository.CoffeeFarmerRepository
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		townRepo:   params.TownRepo,
		coffeeRepo: params.CoffeeRepo,
		farmerRepo: params.FarmerRepo,
		logger:     params.Logger,
	}
}

// ImportCatalog upserts towns, farmers and coffees, in that order.
func (srv *catalogService) ImportCatalog(ctx context.Context, catalog *entity.Catalog) (*usecase.ImportCatalogOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if catalog == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("catalog is required")
	}
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	out := &usecase.ImportCatalogOutput{}
	for _, town := range catalog.Towns {
		if err := srv.townRepo.Save(ctx, town); err != nil {
			return out, errors.Wrapf(err, "failed to save town %s", town.ID)
		}
		out.Towns++
	}
	for _, farmer := range catalog.Farmers {
		if err := srv.farmerRepo.Save(ctx, farmer); err != nil {
			return out, errors.Wrapf(err, "failed to save farmer %s", farmer.ID)
		}
		out.Farmers++
	}
	for _, coffee := range catalog.Coffees {
		if err := srv.coffeeRepo.Save(ctx, coffee); err != nil {
			return out, errors.Wrapf(err, "failed to save coffee %s", coffee.ID)
		}
		out.Coffees++
	}

	logger.Info("Catalog imported",
		slog.Int("towns", out.Towns),
		slog.Int("farmers", out.Farmers),
		slog.Int("coffees", out.Coffees),
	)

	return out, nil
}

// validateCatalog checks every record before anything is written.
func validateCatalog(catalog *entity.Catalog) error {
	invalid := func(kind string, i int, msg string) error {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s #%d: %s", kind, i, msg))
	}

	towns := make(map[string]struct{}, len(catalog.Towns))
	for i, town := range catalog.Towns {
		switch {
		case town == nil:
			return invalid("town", i, "empty record")
		case town.ID == "":
			return invalid("town", i, "id is required")
		case town.Name == "":
			return invalid("town", i, "name is required")
		case town.CoffeeCount < 0 || town.FarmerCount < 0:
			return invalid("town", i, "counts cannot be negative")
		}
		towns[town.ID] = struct{}{}
	}

	for i, farmer := range catalog.Farmers {
		switch {
		case farmer == nil:
			return invalid("farmer", i, "empty record")
		case farmer.ID == "" || farmer.UserID == "":
			return invalid("farmer", i, "id and user id are required")
		case farmer.FarmName == "":
			return invalid("farmer", i, "farm name is required")
		case !farmer.Status.IsValid():
			return invalid("farmer", i, "unknown status "+farmer.Status.String())
		}
		if err := checkTownRef(towns, farmer.TownID); err != nil {
			return invalid("farmer", i, err.Error())
		}
	}

	for i, coffee := range catalog.Coffees {
		switch {
		case coffee == nil:
			return invalid("coffee", i, "empty record")
		case coffee.ID == "":
			return invalid("coffee", i, "id is required")
		case coffee.Name == "":
			return invalid("coffee", i, "name is required")
		case !coffee.Type.IsValid():
			return invalid("coffee", i, "unknown coffee type "+coffee.Type.String())
		case !coffee.RoastLevel.IsValid():
			return invalid("coffee", i, "unknown roast level "+coffee.RoastLevel.String())
		case coffee.Rating < 0 || coffee.Rating > 5:
			return invalid("coffee", i, "rating must be between 0 and 5")
		case coffee.PricePerUnit < 0 || coffee.AvailableQuantity < 0:
			return invalid("coffee", i, "price and quantity cannot be negative")
		}
		if err := checkTownRef(towns, coffee.TownID); err != nil {
			return invalid("coffee", i, err.Error())
		}
	}

	return nil
}

// checkTownRef requires a town id and, when the catalog carries towns, one of them.
func checkTownRef(towns map[string]struct{}, townID string) error {
	if townID == "" {
		return errors.New("town id is required")
	}
	if len(towns) == 0 {
		return nil
	}
	if _, ok := towns[townID]; !ok {
		return errors.Errorf("unknown town %s", townID)
	}

	return nil
}
