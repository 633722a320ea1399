package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"townscoffee/config"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/lifecycle"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/domain/validation"
	"townscoffee/internal/errors"
	"townscoffee/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const defaultFarmerTopicPrefix = "farmer-"

// farmerService implements the FarmerUsecase interface.
type farmerService struct {
	farmerRepo  repository.CoffeeFarmerRepository
	notifier    service.NotificationService
	analytics   service.AnalyticsSink
	topicPrefix string
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// FarmerServiceParams holds dependencies for FarmerService, injected by Fx.
type FarmerServiceParams struct {
	fx.In

	FarmerRepo repository.CoffeeFarmerRepository
	Notifier   service.NotificationService `optional:"true"`
	Analytics  service.AnalyticsSink       `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewFarmerService is the constructor for farmerService.
func NewFarmerService(params FarmerServiceParams) usecase.FarmerUsecase {
	topicPrefix := defaultFarmerTopicPrefix
	notifier := params.Notifier
	if params.Config != nil && params.Config.Notification != nil {
		if !params.Config.Notification.Enabled {
			notifier = nil
		}
		if params.Config.Notification.TopicPrefix != "" {
			topicPrefix = params.Config.Notification.TopicPrefix
		}
	}

	return &farmerService{
		farmerRepo:  params.FarmerRepo,
		notifier:    notifier,
		analytics:   params.Analytics,
		topicPrefix: topicPrefix,
		logger:      params.Logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// SubmitFarmerApplication creates a pending farmer profile for the user.
func (srv *farmerService) SubmitFarmerApplication(ctx context.Context, input usecase.SubmitFarmerApplicationInput) (*usecase.FarmerApplicationOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if err := validateApplication(input); err != nil {
		return nil, err
	}

	userID := strings.TrimSpace(input.UserID)
	existing, err := srv.farmerRepo.FetchByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrFarmerApplicationExists.WithDetails("existing application " + existing.ID)
	case !errors.Is(err, repository.ErrFarmerNotFound):
		return nil, errors.Wrap(err, "failed to check existing application")
	}

	farmer := &entity.CoffeeFarmer{
		ID:                 srv.newID(),
		UserID:             userID,
		FarmName:           strings.TrimSpace(input.FarmName),
		FarmDescription:    strings.TrimSpace(input.FarmDescription),
		TownID:             strings.TrimSpace(input.TownID),
		Hectares:           input.Hectares,
		Altitude:           input.Altitude,
		CoffeeTypes:        input.CoffeeTypes,
		Certifications:     input.Certifications,
		ImageURL:           strings.TrimSpace(input.ImageURL),
		Location:           orb.Point{input.Longitude, input.Latitude},
		Status:             entity.FarmerStatusPending,
		AnnualProduction:   input.AnnualProduction,
		MainContact:        strings.TrimSpace(input.MainContact),
		ContactPhone:       strings.TrimSpace(input.ContactPhone),
		ContactEmail:       strings.TrimSpace(input.ContactEmail),
		YearsOfExperience:  input.YearsOfExperience,
		CultivationMethods: input.CultivationMethods,
		IsVerified:         false,
		ApplicationDate:    srv.now(),
	}

	if err := srv.farmerRepo.Create(ctx, farmer); err != nil {
		return nil, errors.Wrap(err, "failed to create farmer application")
	}

	logger.Info("Farmer application submitted",
		slog.String("farmer_id", farmer.ID),
		slog.String("user_id", userID),
	)
	track(ctx, srv.analytics, service.EventFarmerApplication, userID, map[string]string{
		"farmer_id": farmer.ID,
		"town_id":   farmer.TownID,
	})

	return &usecase.FarmerApplicationOutput{
		Farmer:  farmer,
		Message: "Application submitted and pending review",
	}, nil
}

func validateApplication(input usecase.SubmitFarmerApplicationInput) error {
	for _, field := range []struct{ name, value string }{
		{"user id", input.UserID},
		{"farm name", input.FarmName},
		{"town id", input.TownID},
	} {
		if res := validation.Required(field.name, field.value); !res.Valid {
			return domainerrors.ErrValidationFailed.WithMessage(res.Message)
		}
	}

	if input.ContactEmail != "" {
		if res := validation.Email(input.ContactEmail); !res.Valid {
			return domainerrors.ErrInvalidEmail.WithMessage(res.Message)
		}
	}
	if input.ContactPhone != "" {
		if res := validation.Phone(input.ContactPhone); !res.Valid {
			return domainerrors.ErrInvalidPhone.WithMessage(res.Message)
		}
	}

	if input.Hectares < 0 || input.AnnualProduction < 0 || input.YearsOfExperience < 0 {
		return domainerrors.ErrValidationFailed.WithMessage("farm figures cannot be negative")
	}

	return nil
}

// ApproveFarmerApplication verifies a pending application.
func (srv *farmerService) ApproveFarmerApplication(ctx context.Context, farmerID string) (*usecase.FarmerApplicationOutput, error) {
	farmer, err := srv.resolve(ctx, farmerID, entity.FarmerStatusApproved, "")
	if err != nil {
		return nil, err
	}

	srv.notify(ctx, farmer, "Application approved",
		"Your farm "+farmer.FarmName+" is now verified on Town's Coffee")

	return &usecase.FarmerApplicationOutput{
		Farmer:  farmer,
		Message: "Farmer application approved",
	}, nil
}

// RejectFarmerApplication refuses a pending application and stores the reason.
func (srv *farmerService) RejectFarmerApplication(ctx context.Context, input usecase.RejectFarmerApplicationInput) (*usecase.FarmerApplicationOutput, error) {
	reason := strings.TrimSpace(input.Reason)
	if res := validation.Required("rejection reason", reason); !res.Valid {
		return nil, domainerrors.ErrValidationFailed.WithMessage(res.Message)
	}

	farmer, err := srv.resolve(ctx, input.FarmerID, entity.FarmerStatusRejected, reason)
	if err != nil {
		return nil, err
	}

	srv.notify(ctx, farmer, "Application rejected", reason)

	return &usecase.FarmerApplicationOutput{
		Farmer:  farmer,
		Message: "Farmer application rejected",
	}, nil
}

// resolve moves a pending application to next.
func (srv *farmerService) resolve(ctx context.Context, farmerID string, next entity.FarmerStatus, reason string) (*entity.CoffeeFarmer, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	farmer, err := srv.GetFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	if farmer.Status != entity.FarmerStatusPending || !farmer.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move application from " + farmer.Status.String() + " to " + next.String())
	}

	verifiedAt := srv.now()
	isVerified := next == entity.FarmerStatusApproved

	if err := srv.farmerRepo.UpdateStatus(ctx, farmer.ID, next, isVerified, verifiedAt, reason); err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			return nil, domainerrors.ErrFarmerNotFound.WithDetails(farmer.ID)
		}

		return nil, errors.Wrap(err, "failed to update farmer status")
	}

	farmer.Status = next
	farmer.IsVerified = isVerified
	farmer.VerificationDate = &verifiedAt
	if reason != "" {
		farmer.RejectionReason = reason
	}

	logger.Info("Farmer application resolved",
		slog.String("farmer_id", farmer.ID),
		slog.String("status", next.String()),
	)
	track(ctx, srv.analytics, service.EventFarmerApplicationFinal, farmer.UserID, map[string]string{
		"farmer_id": farmer.ID,
		"status":    next.String(),
	})

	return farmer, nil
}

// notify pushes the decision to the farmer's topic without waiting for it.
func (srv *farmerService) notify(ctx context.Context, farmer *entity.CoffeeFarmer, title, body string) {
	if srv.notifier == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	topic := srv.topicPrefix + farmer.ID
	data := map[string]string{
		"farmerId": farmer.ID,
		"status":   farmer.Status.String(),
	}

	go func() {
		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.notifier.SendToTopic(pushCtx, topic, title, body, data); err != nil {
			logger.Warn("Failed to push farmer decision",
				slog.String("topic", topic),
				slog.Any("error", err),
			)
		}
	}()
}

// GetFarmerApplicationStatus summarizes an application.
func (srv *farmerService) GetFarmerApplicationStatus(ctx context.Context, farmerID string) (*usecase.FarmerApplicationStatusOutput, error) {
	farmer, err := srv.GetFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	return &usecase.FarmerApplicationStatusOutput{
		FarmerID:         farmer.ID,
		Status:           farmer.Status,
		IsVerified:       farmer.IsVerified,
		ApplicationDate:  farmer.ApplicationDate,
		VerificationDate: farmer.VerificationDate,
		RejectionReason:  farmer.RejectionReason,
	}, nil
}

// ListPendingApplications returns pending applications, newest first.
func (srv *farmerService) ListPendingApplications(ctx context.Context) ([]*entity.CoffeeFarmer, error) {
	farmers, err := srv.farmerRepo.FetchByStatus(ctx, entity.FarmerStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch pending applications")
	}

	return farmers, nil
}

// GetFarmer returns one farmer profile.
func (srv *farmerService) GetFarmer(ctx context.Context, farmerID string) (*entity.CoffeeFarmer, error) {
	farmerID = strings.TrimSpace(farmerID)
	if farmerID == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("farmer id is required")
	}

	farmer, err := srv.farmerRepo.FetchByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			return nil, domainerrors.ErrFarmerNotFound.WithDetails(farmerID)
		}

		return nil, errors.Wrap(err, "failed to fetch farmer")
	}

	return farmer, nil
}

// ListFarmers returns every approved farmer, best rated first.
func (srv *farmerService) ListFarmers(ctx context.Context) ([]*entity.CoffeeFarmer, error) {
	farmers, err := srv.farmerRepo.FetchApproved(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch farmers")
	}

	return farmers, nil
}

// SearchFarmers matches approved farmers by farm name or description. A blank
// query lists every approved farmer.
func (srv *farmerService) SearchFarmers(ctx context.Context, query string) ([]*entity.CoffeeFarmer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return srv.ListFarmers(ctx)
	}

	farmers, err := srv.farmerRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search farmers")
	}

	return farmers, nil
}

// GetTopRatedFarmers returns the best rated approved farmers.
func (srv *farmerService) GetTopRatedFarmers(ctx context.Context, limit int) ([]*entity.CoffeeFarmer, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	farmers, err := srv.farmerRepo.FetchTopRated(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch top rated farmers")
	}

	return farmers, nil
}

// UpdateFarmerProfile lets the owning user edit the farm data of their profile.
func (srv *farmerService) UpdateFarmerProfile(ctx context.Context, input usecase.UpdateFarmerProfileInput) (*usecase.FarmerApplicationOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("user id is required")
	}

	farmer, err := srv.GetFarmer(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}
	if farmer.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("farmer " + farmer.ID + " belongs to another user")
	}

	if err := validateApplication(usecase.SubmitFarmerApplicationInput{
		UserID:            userID,
		FarmName:          input.FarmName,
		TownID:            farmer.TownID,
		ContactPhone:      input.ContactPhone,
		ContactEmail:      input.ContactEmail,
		Hectares:          input.Hectares,
		AnnualProduction:  input.AnnualProduction,
		YearsOfExperience: input.YearsOfExperience,
	}); err != nil {
		return nil, err
	}

	farmer.FarmName = strings.TrimSpace(input.FarmName)
	farmer.FarmDescription = strings.TrimSpace(input.FarmDescription)
	farmer.Hectares = input.Hectares
	farmer.Altitude = input.Altitude
	farmer.CoffeeTypes = input.CoffeeTypes
	farmer.Certifications = input.Certifications
	farmer.ImageURL = strings.TrimSpace(input.ImageURL)
	farmer.Location = orb.Point{input.Longitude, input.Latitude}
	farmer.AnnualProduction = input.AnnualProduction
	farmer.MainContact = strings.TrimSpace(input.MainContact)
	farmer.ContactPhone = strings.TrimSpace(input.ContactPhone)
	farmer.ContactEmail = strings.TrimSpace(input.ContactEmail)
	farmer.YearsOfExperience = input.YearsOfExperience
	farmer.CultivationMethods = input.CultivationMethods

	if err := srv.farmerRepo.UpdateProfile(ctx, farmer); err != nil {
		if errors.Is(err, repository.ErrFarmerNotFound) {
			return nil, domainerrors.ErrFarmerNotFound.WithDetails(farmer.ID)
		}

		return nil, errors.Wrap(err, "failed to update farmer profile")
	}

	logger.Info("Farmer profile updated",
		slog.String("farmer_id", farmer.ID),
		slog.String("user_id", userID),
	)

	return &usecase.FarmerApplicationOutput{
		Farmer:  farmer,
		Message: "Farmer profile updated",
	}, nil
}
