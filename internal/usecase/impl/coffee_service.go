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
)

// coffeeService implements the CoffeeUsecase interface.
type coffeeService struct {
	coffeeRepo repository.CoffeeRepository
	analytics  service.AnalyticsSink
	logger     *slog.Logger
}

// CoffeeServiceParams holds dependencies for CoffeeService, injected by Fx.
type CoffeeServiceParams struct {
	fx.In

	CoffeeRepo repository.CoffeeRepository
	Analytics  service.AnalyticsSink `optional:"true"`
	Logger     *slog.Logger
}

// NewCoffeeService is the constructor for coffeeService.
func NewCoffeeService(params CoffeeServiceParams) usecase.CoffeeUsecase {
	return &coffeeService{
		coffeeRepo: params.CoffeeRepo,
		analytics:  params.Analytics,
		logger:     params.Logger,
	}
}

// GetCoffees lists coffees using the first filter that is set.
func (srv *coffeeService) GetCoffees(ctx context.Context, input usecase.GetCoffeesInput) (*usecase.GetCoffeesOutput, error) {
	sortBy, err := usecase.ParseCoffeeSortKey(string(input.SortBy))
	if err != nil {
		return nil, err
	}

	coffees, err := srv.fetch(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch coffees")
	}

	sorted := sortCoffees(coffees, sortBy)

	if err := srv.markFavorites(ctx, input.ViewerUserID, sorted); err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Coffees fetched",
		slog.Int("count", len(sorted)),
		slog.String("sort_by", string(sortBy)),
	)

	return &usecase.GetCoffeesOutput{
		Coffees:    sorted,
		TotalCount: len(sorted),
	}, nil
}

func (srv *coffeeService) fetch(ctx context.Context, input usecase.GetCoffeesInput) ([]*entity.Coffee, error) {
	if query := strings.TrimSpace(input.SearchQuery); query != "" {
		track(ctx, srv.analytics, service.EventCoffeeSearch, input.ViewerUserID, map[string]string{"query": query})

		return srv.coffeeRepo.Search(ctx, query)
	}
	if townID := strings.TrimSpace(input.TownID); townID != "" {
		return srv.coffeeRepo.FetchByTown(ctx, townID)
	}
	if farmerID := strings.TrimSpace(input.FarmerID); farmerID != "" {
		return srv.coffeeRepo.FetchByFarmer(ctx, farmerID)
	}
	if input.Type != "" {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("unknown coffee type " + string(input.Type))
		}

		return srv.coffeeRepo.FetchByType(ctx, input.Type)
	}
	if input.RoastLevel != "" {
		if !input.RoastLevel.IsValid() {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("unknown roast level " + string(input.RoastLevel))
		}

		return srv.coffeeRepo.FetchByRoastLevel(ctx, input.RoastLevel)
	}

	return srv.coffeeRepo.FetchAll(ctx)
}

// sortCoffees returns a sorted copy; ties fall back to the id.
func sortCoffees(coffees []*entity.Coffee, sortBy usecase.CoffeeSortKey) []*entity.Coffee {
	sorted := slices.Clone(coffees)

	slices.SortStableFunc(sorted, func(a, b *entity.Coffee) int {
		var c int
		switch sortBy {
		case usecase.CoffeeSortByPrice:
			c = cmp.Compare(a.PricePerUnit, b.PricePerUnit)
		case usecase.CoffeeSortByName:
			c = cmp.Compare(a.Name, b.Name)
		case usecase.CoffeeSortByNewest:
			c = b.CreatedDate.Compare(a.CreatedDate)
		default:
			c = cmp.Compare(b.Rating, a.Rating)
		}
		if c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return sorted
}

// markFavorites sets IsFavorite for viewerUserID. Without a viewer every
// coffee stays unmarked.
func (srv *coffeeService) markFavorites(ctx context.Context, viewerUserID string, coffees []*entity.Coffee) error {
	if viewerUserID == "" || len(coffees) == 0 {
		return nil
	}

	ids, err := srv.coffeeRepo.FavoriteIDs(ctx, viewerUserID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch favorites")
	}

	favorites := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		favorites[id] = struct{}{}
	}
	for _, coffee := range coffees {
		_, coffee.IsFavorite = favorites[coffee.ID]
	}

	return nil
}

// GetCoffee returns one coffee, marked for viewerUserID when set.
func (srv *coffeeService) GetCoffee(ctx context.Context, coffeeID, viewerUserID string) (*entity.Coffee, error) {
	if strings.TrimSpace(coffeeID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("coffee id is required")
	}

	coffee, err := srv.coffeeRepo.FetchByID(ctx, coffeeID)
	if err != nil {
		if errors.Is(err, repository.ErrCoffeeNotFound) {
			return nil, domainerrors.ErrCoffeeNotFound.WithDetails(coffeeID)
		}

		return nil, errors.Wrap(err, "failed to fetch coffee")
	}

	if viewerUserID != "" {
		isFavorite, err := srv.coffeeRepo.IsFavorite(ctx, viewerUserID, coffeeID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
		coffee.IsFavorite = isFavorite
	}

	track(ctx, srv.analytics, service.EventCoffeeView, viewerUserID, map[string]string{"coffee_id": coffeeID})

	return coffee, nil
}

// GetTopRatedCoffees returns the best rated coffees.
func (srv *coffeeService) GetTopRatedCoffees(ctx context.Context, limit int) ([]*entity.Coffee, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	coffees, err := srv.coffeeRepo.FetchTopRated(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch top rated coffees")
	}

	return coffees, nil
}
