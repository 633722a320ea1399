package handler

import (
	"net/http"

	"townscoffee/internal/delivery/api/response"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TownHandlerParams holds dependencies for TownHandler, injected by Fx.
type TownHandlerParams struct {
	fx.In

	TownUC usecase.TownUsecase
}

// TownHandler serves the town directory.
type TownHandler struct {
	townUC usecase.TownUsecase
}

// NewTownHandler is the constructor for TownHandler
func NewTownHandler(params TownHandlerParams) *TownHandler {
	return &TownHandler{townUC: params.TownUC}
}

// TownDetailResponse is a town with its coffees and approved farmers.
type TownDetailResponse struct {
	Town    *entity.Town           `json:"town"`
	Coffees []*entity.Coffee       `json:"coffees"`
	Farmers []*entity.CoffeeFarmer `json:"farmers"`
}

// GetTowns lists active towns. Query parameters: q, department, sortBy.
func (h *TownHandler) GetTowns(c echo.Context) error {
	output, err := h.townUC.GetTowns(c.Request().Context(), usecase.GetTownsInput{
		Department:  c.QueryParam("department"),
		SearchQuery: c.QueryParam("q"),
		SortBy:      usecase.TownSortKey(c.QueryParam("sortBy")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(output.Towns))
}

// GetTownDetail returns one town with its coffees and farmers.
func (h *TownHandler) GetTownDetail(c echo.Context) error {
	output, err := h.townUC.GetTownDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	coffees, farmers := output.Coffees, output.Farmers
	if coffees == nil {
		coffees = []*entity.Coffee{}
	}
	if farmers == nil {
		farmers = []*entity.CoffeeFarmer{}
	}

	return response.Success(c, http.StatusOK, TownDetailResponse{
		Town:    output.Town,
		Coffees: coffees,
		Farmers: farmers,
	})
}

// GetTopTowns ranks towns. Query parameters: by (coffeeCount|farmerCount), limit.
func (h *TownHandler) GetTopTowns(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidArgument.ErrorCode(), "limit must be a number")
	}

	towns, err := h.townUC.GetTopTowns(c.Request().Context(), usecase.GetTopTownsInput{
		By:    usecase.TownSortKey(c.QueryParam("by")),
		Limit: limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(towns))
}
