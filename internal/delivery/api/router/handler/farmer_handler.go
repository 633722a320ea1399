package handler

import (
	"net/http"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FarmerHandlerParams holds dependencies for FarmerHandler, injected by Fx.
type FarmerHandlerParams struct {
	fx.In

	FarmerUC usecase.FarmerUsecase
}

// FarmerHandler serves farmer applications and profiles.
type FarmerHandler struct {
	farmerUC usecase.FarmerUsecase
}

// NewFarmerHandler is the constructor for FarmerHandler
func NewFarmerHandler(params FarmerHandlerParams) *FarmerHandler {
	return &FarmerHandler{farmerUC: params.FarmerUC}
}

// SubmitApplicationRequest is the body of POST /api/v1/farmers/applications.
// Contact formats and figures are checked by the use case.
type SubmitApplicationRequest struct {
	FarmName           string   `json:"farmName" validate:"required"`
	FarmDescription    string   `json:"farmDescription"`
	TownID             string   `json:"townId" validate:"required"`
	Hectares           float64  `json:"hectares"`
	Altitude           int      `json:"altitude"`
	CoffeeTypes        []string `json:"coffeeTypes"`
	Certifications     []string `json:"certifications"`
	ImageURL           string   `json:"imageUrl"`
	Latitude           float64  `json:"latitude" validate:"latitude"`
	Longitude          float64  `json:"longitude" validate:"longitude"`
	AnnualProduction   int      `json:"annualProduction"`
	MainContact        string   `json:"mainContact"`
	ContactPhone       string   `json:"contactPhone"`
	ContactEmail       string   `json:"contactEmail"`
	YearsOfExperience  int      `json:"yearsOfExperience"`
	CultivationMethods []string `json:"cultivationMethods"`
}

// SubmitApplication files a farmer application for the authenticated user.
func (h *FarmerHandler) SubmitApplication(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	var req SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.farmerUC.SubmitFarmerApplication(c.Request().Context(), usecase.SubmitFarmerApplicationInput{
		UserID:             userID,
		FarmName:           req.FarmName,
		FarmDescription:    req.FarmDescription,
		TownID:             req.TownID,
		Hectares:           req.Hectares,
		Altitude:           req.Altitude,
		CoffeeTypes:        req.CoffeeTypes,
		Certifications:     req.Certifications,
		ImageURL:           req.ImageURL,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AnnualProduction:   req.AnnualProduction,
		MainContact:        req.MainContact,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		YearsOfExperience:  req.YearsOfExperience,
		CultivationMethods: req.CultivationMethods,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, output.Farmer, output.Message)
}

// UpdateFarmerProfileRequest is the body of PUT /api/v1/farmers/:id. The town
// is fixed at application time.
type UpdateFarmerProfileRequest struct {
	FarmName           string   `json:"farmName" validate:"required"`
	FarmDescription    string   `json:"farmDescription"`
	Hectares           float64  `json:"hectares"`
	Altitude           int      `json:"altitude"`
	CoffeeTypes        []string `json:"coffeeTypes"`
	Certifications     []string `json:"certifications"`
	ImageURL           string   `json:"imageUrl"`
	Latitude           float64  `json:"latitude" validate:"latitude"`
	Longitude          float64  `json:"longitude" validate:"longitude"`
	AnnualProduction   int      `json:"annualProduction"`
	MainContact        string   `json:"mainContact"`
	ContactPhone       string   `json:"contactPhone"`
	ContactEmail       string   `json:"contactEmail"`
	YearsOfExperience  int      `json:"yearsOfExperience"`
	CultivationMethods []string `json:"cultivationMethods"`
}

// ListFarmers returns approved farmers, best rated first. Query parameter q
// narrows the list to farm names and descriptions containing it.
func (h *FarmerHandler) ListFarmers(c echo.Context) error {
	farmers, err := h.farmerUC.SearchFarmers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(farmers))
}

// GetTopRatedFarmers returns the best rated farmers. Query parameter: limit.
func (h *FarmerHandler) GetTopRatedFarmers(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidArgument.ErrorCode(), "limit must be a number")
	}

	farmers, err := h.farmerUC.GetTopRatedFarmers(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(farmers))
}

// UpdateProfile edits the farm data of a profile owned by the caller.
func (h *FarmerHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
	}

	var req UpdateFarmerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farmer profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.farmerUC.UpdateFarmerProfile(c.Request().Context(), usecase.UpdateFarmerProfileInput{
		FarmerID:           c.Param("id"),
		UserID:             userID,
		FarmName:           req.FarmName,
		FarmDescription:    req.FarmDescription,
		Hectares:           req.Hectares,
		Altitude:           req.Altitude,
		CoffeeTypes:        req.CoffeeTypes,
		Certifications:     req.Certifications,
		ImageURL:           req.ImageURL,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AnnualProduction:   req.AnnualProduction,
		MainContact:        req.MainContact,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		YearsOfExperience:  req.YearsOfExperience,
		CultivationMethods: req.CultivationMethods,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, output.Farmer, output.Message)
}

// GetFarmer returns a farmer profile.
func (h *FarmerHandler) GetFarmer(c echo.Context) error {
	farmer, err := h.farmerUC.GetFarmer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, farmer)
}

// GetApplicationStatus returns where an application stands.
func (h *FarmerHandler) GetApplicationStatus(c echo.Context) error {
	status, err := h.farmerUC.GetFarmerApplicationStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ApplicationStatusResponse{
		FarmerID:         status.FarmerID,
		Status:           status.Status.String(),
		IsVerified:       status.IsVerified,
		ApplicationDate:  status.ApplicationDate,
		VerificationDate: status.VerificationDate,
		RejectionReason:  status.RejectionReason,
	})
}
