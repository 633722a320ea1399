package impl

import (
	"context"
	"log/slog"
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

// favoritesService implements the FavoritesUsecase interface.
type favoritesService struct {
	coffeeRepo repository.CoffeeRepository
	analytics  service.AnalyticsSink
	logger     *slog.Logger
}

// FavoritesServiceParams holds dependencies for FavoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	CoffeeRepo repository.CoffeeRepository
	Analytics  service.AnalyticsSink `optional:"true"`
	Logger     *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		coffeeRepo: params.CoffeeRepo,
		analytics:  params.Analytics,
		logger:     params.Logger,
	}
}

// ManageFavorites adds, removes, toggles or queries a favorite. Toggle is a
// read followed by a write and is not atomic.
func (srv *favoritesService) ManageFavorites(ctx context.Context, input usecase.ManageFavoritesInput) (*usecase.ManageFavoritesOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	userID := strings.TrimSpace(input.UserID)
	coffeeID := strings.TrimSpace(input.CoffeeID)
	if userID == "" || coffeeID == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("user id and coffee id are required")
	}
	if !input.Action.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("unknown favorite action " + string(input.Action))
	}

	action := input.Action
	if action == entity.FavoriteActionToggle {
		isFavorite, err := srv.coffeeRepo.IsFavorite(ctx, userID, coffeeID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
		if isFavorite {
			action = entity.FavoriteActionRemove
		} else {
			action = entity.FavoriteActionAdd
		}
	}

	var out *usecase.ManageFavoritesOutput
	switch action {
	case entity.FavoriteActionAdd:
		if err := srv.coffeeRepo.AddFavorite(ctx, userID, coffeeID); err != nil {
			return nil, errors.Wrap(err, "failed to add favorite")
		}
		track(ctx, srv.analytics, service.EventAddToFavorites, userID, map[string]string{"coffee_id": coffeeID})
		out = &usecase.ManageFavoritesOutput{IsFavorite: true, Message: "Coffee added to favorites"}
	case entity.FavoriteActionRemove:
		if err := srv.coffeeRepo.RemoveFavorite(ctx, userID, coffeeID); err != nil {
			return nil, errors.Wrap(err, "failed to remove favorite")
		}
		track(ctx, srv.analytics, service.EventRemoveFromFavorites, userID, map[string]string{"coffee_id": coffeeID})
		out = &usecase.ManageFavoritesOutput{IsFavorite: false, Message: "Coffee removed from favorites"}
	default:
		isFavorite, err := srv.coffeeRepo.IsFavorite(ctx, userID, coffeeID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
		out = &usecase.ManageFavoritesOutput{IsFavorite: isFavorite, Message: "Not favorite"}
		if isFavorite {
			out.Message = "Is favorite"
		}
	}
	out.Action = input.Action

	logger.Debug("Favorite managed",
		slog.String("user_id", userID),
		slog.String("coffee_id", coffeeID),
		slog.String("action", string(input.Action)),
		slog.Bool("is_favorite", out.IsFavorite),
	)

	return out, nil
}

// ListFavoriteCoffees returns the user's favorite coffees, most recently
// added first. Favorites pointing at deleted coffees are skipped.
func (srv *favoritesService) ListFavoriteCoffees(ctx context.Context, userID string) ([]*entity.Coffee, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("user id is required")
	}

	ids, err := srv.coffeeRepo.FavoriteIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch favorites")
	}

	coffees := make([]*entity.Coffee, 0, len(ids))
	for _, id := range ids {
		coffee, err := srv.coffeeRepo.FetchByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCoffeeNotFound) {
				logger.Debug("Skipping favorite of a missing coffee", slog.String("coffee_id", id))

				continue
			}

			return nil, errors.Wrap(err, "failed to fetch favorite coffee")
		}
		coffee.IsFavorite = true
		coffees = append(coffees, coffee)
	}

	return coffees, nil
}
