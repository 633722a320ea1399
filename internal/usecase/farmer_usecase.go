package usecase

import (
	"context"
	"time"

	"townscoffee/internal/domain/entity"
)

// SubmitFarmerApplicationInput defines the farm data of an application.
type SubmitFarmerApplicationInput struct {
	UserID             string
	FarmName           string
	FarmDescription    string
	TownID             string
	Hectares           float64
	Altitude           int
	CoffeeTypes        []string
	Certifications     []string
	ImageURL           string
	Latitude           float64
	Longitude          float64
	AnnualProduction   int
	MainContact        string
	ContactPhone       string
	ContactEmail       string
	YearsOfExperience  int
	CultivationMethods []string
}

// UpdateFarmerProfileInput carries the owner editable farm data. UserID is the
// caller and must own FarmerID. The town cannot be changed.
type UpdateFarmerProfileInput struct {
	FarmerID           string
	UserID             string
	FarmName           string
	FarmDescription    string
	Hectares           float64
	Altitude           int
	CoffeeTypes        []string
	Certifications     []string
	ImageURL           string
	Latitude           float64
	Longitude          float64
	AnnualProduction   int
	MainContact        string
	ContactPhone       string
	ContactEmail       string
	YearsOfExperience  int
	CultivationMethods []string
}

// RejectFarmerApplicationInput names the application and why it was refused.
type RejectFarmerApplicationInput struct {
	FarmerID string
	Reason   string
}

// FarmerApplicationOutput returns the application after a change.
type FarmerApplicationOutput struct {
	Farmer  *entity.CoffeeFarmer
	Message string
}

// FarmerApplicationStatusOutput summarizes where an application stands.
type FarmerApplicationStatusOutput struct {
	FarmerID         string
	Status           entity.FarmerStatus
	IsVerified       bool
	ApplicationDate  time.Time
	VerificationDate *time.Time
	RejectionReason  string
}

// FarmerUsecase defines the farmer application workflow and the public farmer
// directory.
type FarmerUsecase interface {
	SubmitFarmerApplication(ctx context.Context, input SubmitFarmerApplicationInput) (*FarmerApplicationOutput, error)
	ApproveFarmerApplication(ctx context.Context, farmerID string) (*FarmerApplicationOutput, error)
	RejectFarmerApplication(ctx context.Context, input RejectFarmerApplicationInput) (*FarmerApplicationOutput, error)
	GetFarmerApplicationStatus(ctx context.Context, farmerID string) (*FarmerApplicationStatusOutput, error)
	ListPendingApplications(ctx context.Context) ([]*entity.CoffeeFarmer, error)
	GetFarmer(ctx context.Context, farmerID string) (*entity.CoffeeFarmer, error)
	ListFarmers(ctx context.Context) ([]*entity.CoffeeFarmer, error)
	SearchFarmers(ctx context.Context, query string) ([]*entity.CoffeeFarmer, error)
	GetTopRatedFarmers(ctx context.Context, limit int) ([]*entity.CoffeeFarmer, error)
	UpdateFarmerProfile(ctx context.Context, input UpdateFarmerProfileInput) (*FarmerApplicationOutput, error)
}
