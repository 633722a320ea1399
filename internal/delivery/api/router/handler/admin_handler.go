package handler

import (
	"log/slog"
	"net/http"
	"time"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	FarmerUC usecase.FarmerUsecase
	Logger   *slog.Logger
}

// AdminHandler serves the review of farmer applications.
type AdminHandler struct {
	farmerUC usecase.FarmerUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		farmerUC: params.FarmerUC,
		logger:   params.Logger,
	}
}

// RejectApplicationRequest is the body of a rejection.
type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ApplicationStatusResponse summarizes an application.
type ApplicationStatusResponse struct {
	FarmerID         string     `json:"farmerId"`
	Status           string     `json:"status"`
	IsVerified       bool       `json:"isVerified"`
	ApplicationDate  time.Time  `json:"applicationDate"`
	VerificationDate *time.Time `json:"verificationDate,omitempty"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
}

// ListPending returns the applications waiting for review, newest first.
func (h *AdminHandler) ListPending(c echo.Context) error {
	farmers, err := h.farmerUC.ListPendingApplications(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewListData(farmers))
}

// Approve moves a pending application to approved.
func (h *AdminHandler) Approve(c echo.Context) error {
	output, err := h.farmerUC.ApproveFarmerApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logDecision(c, output)

	return response.SuccessWithMessage(c, http.StatusOK, output.Farmer, output.Message)
}

// Reject moves a pending application to rejected with a reason.
func (h *AdminHandler) Reject(c echo.Context) error {
	var req RejectApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.farmerUC.RejectFarmerApplication(c.Request().Context(), usecase.RejectFarmerApplicationInput{
		FarmerID: c.Param("id"),
		Reason:   req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logDecision(c, output)

	return response.SuccessWithMessage(c, http.StatusOK, output.Farmer, output.Message)
}

func (h *AdminHandler) logDecision(c echo.Context, output *usecase.FarmerApplicationOutput) {
	adminID, _ := deliverycontext.GetUserID(c)

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Farmer application resolved",
		slog.String("admin_id", adminID),
		slog.String("farmer_id", output.Farmer.ID),
		slog.String("status", output.Farmer.Status.String()),
	)
}
