package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"
	"townscoffee/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultTopLimit = 10

// townService implements the TownUsecase interface.
type townService struct {
	townRepo   repository.TownRepository
	coffeeRepo repository.CoffeeRepository
	farmerRepo repository.CoffeeFarmerRepository
	analytics  service.AnalyticsSink
	logger     *slog.Logger
}

// TownServiceParams holds dependencies for TownService, injected by Fx.
type TownServiceParams struct {
	fx.In

	TownRepo   repository.TownRepository
	CoffeeRepo repository.CoffeeRepository
	FarmerRepo repository.CoffeeFarmerRepository
	Analytics  service.AnalyticsSink `optional:"true"`
	Logger     *slog.Logger
}

// NewTownService is the constructor for townService.
func NewTownService(params TownServiceParams) usecase.TownUsecase {
	return &townService{
		townRepo:   params.TownRepo,
		coffeeRepo: params.CoffeeRepo,
		farmerRepo: params.FarmerRepo,
		analytics:  params.Analytics,
		logger:     params.Logger,
	}
}

// GetTowns lists active towns. A search query wins over a department filter.
func (srv *townService) GetTowns(ctx context.Context, input usecase.GetTownsInput) (*usecase.GetTownsOutput, error) {
	sortBy, err := usecase.ParseTownSortKey(string(input.SortBy))
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(input.SearchQuery)
	department := strings.TrimSpace(input.Department)

	var towns []*entity.Town
	switch {
	case query != "":
		towns, err = srv.townRepo.Search(ctx, query)
		track(ctx, srv.analytics, service.EventTownSearch, "", map[string]string{"query": query})
	case department != "":
		towns, err = srv.townRepo.FetchByDepartment(ctx, department)
	default:
		towns, err = srv.townRepo.FetchAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch towns")
	}

	sorted := sortTowns(towns, sortBy)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Towns fetched",
		slog.Int("count", len(sorted)),
		slog.String("sort_by", string(sortBy)),
	)

	return &usecase.GetTownsOutput{
		Towns:      sorted,
		TotalCount: len(sorted),
	}, nil
}

// sortTowns returns a sorted copy; ties fall back to the id.
func sortTowns(towns []*entity.Town, sortBy usecase.TownSortKey) []*entity.Town {
	sorted := slices.Clone(towns)

	slices.SortStableFunc(sorted, func(a, b *entity.Town) int {
		var c int
		switch sortBy {
		case usecase.TownSortByCoffeeCount:
			c = cmp.Compare(b.CoffeeCount, a.CoffeeCount)
		case usecase.TownSortByFarmerCount:
			c = cmp.Compare(b.FarmerCount, a.FarmerCount)
		default:
			c = cmp.Compare(a.Name, b.Name)
		}
		if c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return sorted
}

// GetTownDetail fetches the town, its coffees and its approved farmers
// concurrently. Any failure fails the whole call.
func (srv *townService) GetTownDetail(ctx context.Context, townID string) (*usecase.GetTownDetailOutput, error) {
	if strings.TrimSpace(townID) == "" {
		return nil, domainerrors.ErrInvalidTownID.WithDetails("town id is required")
	}

	var (
		town    *entity.Town
		coffees []*entity.Coffee
		farmers []*entity.CoffeeFarmer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		town, err = srv.townRepo.FetchByID(gctx, townID)
		if errors.Is(err, repository.ErrTownNotFound) {
			return domainerrors.ErrTownNotFound.WithDetails(townID)
		}

		return err
	})
	g.Go(func() error {
		var err error
		coffees, err = srv.coffeeRepo.FetchByTown(gctx, townID)

		return err
	})
	g.Go(func() error {
		var err error
		farmers, err = srv.farmerRepo.FetchApprovedByTown(gctx, townID)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to fetch town detail")
	}

	track(ctx, srv.analytics, service.EventTownView, "", map[string]string{"town_id": townID})

	return &usecase.GetTownDetailOutput{
		Town:    town,
		Coffees: coffees,
		Farmers: farmers,
	}, nil
}

// GetTopTowns ranks active towns by coffee or farmer count.
func (srv *townService) GetTopTowns(ctx context.Context, input usecase.GetTopTownsInput) ([]*entity.Town, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTopLimit
	}

	var (
		towns []*entity.Town
		err   error
	)
	switch input.By {
	case usecase.TownSortByCoffeeCount, "":
		towns, err = srv.townRepo.FetchTopByCoffeeCount(ctx, limit)
	case usecase.TownSortByFarmerCount:
		towns, err = srv.townRepo.FetchTopByFarmerCount(ctx, limit)
	default:
		return nil, domainerrors.ErrInvalidArgument.WithDetails("towns can be ranked by coffeeCount or farmerCount")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch top towns")
	}

	return towns, nil
}
