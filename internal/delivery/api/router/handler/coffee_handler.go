package handler

import (
	"net/http"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CoffeeHandlerParams holds dependencies for CoffeeHandler, injected by Fx.
type CoffeeHandlerParams struct {
	fx.In

	CoffeeUC usecase.CoffeeUsecase
}

// CoffeeHandler serves the coffee catalog. Authenticated callers get
// isFavorite resolved for themselves.
type CoffeeHandler struct {
	coffeeUC usecase.CoffeeUsecase
}

// NewCoffeeHandler is the constructor for CoffeeHandler
func NewCoffeeHandler(params CoffeeHandlerParams) *CoffeeHandler {
	return &CoffeeHandler{coffeeUC: params.CoffeeUC}
}

// GetCoffees lists coffees. Query parameters: q, townId, farmerId, type,
// roastLevel, sortBy. Only the first filter present applies.
func (h *CoffeeHandler) GetCoffees(c echo.Context) error {
	viewer, _ := deliverycontext.GetUserID(c)

	output, err := h.coffeeUC.GetCoffees(c.Request().Context(), usecase.GetCoffeesInput{
		TownID:       c.QueryParam("townId"),
		FarmerID:     c.QueryParam("farmerId"),
		Type:         entity.CoffeeType(c.QueryParam("type")),
		RoastLevel:   entity.RoastLevel(c.QueryParam("roastLevel")),
		SearchQuery:  c.QueryParam("q"),
		SortBy:       usecase.CoffeeSortKey(c.QueryParam("sortBy")),
		ViewerUserID: viewer,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(output.Coffees))
}

// GetCoffee returns one coffee.
func (h *CoffeeHandler) GetCoffee(c echo.Context) error {
	viewer, _ := deliverycontext.GetUserID(c)

	coffee, err := h.coffeeUC.GetCoffee(c.Request().Context(), c.Param("id"), viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coffee)
}

// GetTopRatedCoffees returns the best rated coffees. Query parameter: limit.
func (h *CoffeeHandler) GetTopRatedCoffees(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidArgument.ErrorCode(), "limit must be a number")
	}

	coffees, err := h.coffeeUC.GetTopRatedCoffees(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(coffees))
}
