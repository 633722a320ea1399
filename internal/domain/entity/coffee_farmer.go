package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// CoffeeFarmer is the seller profile of a user. A user owns at most one.
type CoffeeFarmer struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"userId"`
	FarmName           string       `json:"farmName"`
	FarmDescription    string       `json:"farmDescription"`
	TownID             string       `json:"townId"`
	Hectares           float64      `json:"hectares"`
	Altitude           int          `json:"altitude"`
	CoffeeTypes        []string     `json:"coffeeTypes"`
	Certifications     []string     `json:"certifications"`
	ImageURL           string       `json:"imageUrl"`
	Location           orb.Point    `json:"location"` // [longitude, latitude]
	Status             FarmerStatus `json:"status"`
	AnnualProduction   int          `json:"annualProduction"`
	MainContact        string       `json:"mainContact"`
	ContactPhone       string       `json:"contactPhone"`
	ContactEmail       string       `json:"contactEmail"`
	YearsOfExperience  int          `json:"yearsOfExperience"`
	CultivationMethods []string     `json:"cultivationMethods"`
	Rating             float64      `json:"rating"`
	ProductCount       int          `json:"productCount"`
	IsVerified         bool         `json:"isVerified"`
	ApplicationDate    time.Time    `json:"applicationDate"`
	VerificationDate   *time.Time   `json:"verificationDate,omitempty"`
	RejectionReason    string       `json:"rejectionReason,omitempty"`
}

// FarmerStatus is the state of a farmer application.
//
//	pending -> approved | rejected
//	approved <-> suspended
type FarmerStatus string

const (
	FarmerStatusPending   FarmerStatus = "pending"
	FarmerStatusApproved  FarmerStatus = "approved"
	FarmerStatusRejected  FarmerStatus = "rejected"
	FarmerStatusSuspended FarmerStatus = "suspended"
)

var farmerTransitions = map[FarmerStatus][]FarmerStatus{
	FarmerStatusPending:   {FarmerStatusApproved, FarmerStatusRejected},
	FarmerStatusApproved:  {FarmerStatusSuspended},
	FarmerStatusSuspended: {FarmerStatusApproved},
}

// String returns the string representation of the FarmerStatus.
func (s FarmerStatus) String() string {
	return string(s)
}

// IsValid checks if the FarmerStatus is a valid value.
func (s FarmerStatus) IsValid() bool {
	switch s {
	case FarmerStatusPending, FarmerStatusApproved, FarmerStatusRejected, FarmerStatusSuspended:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Rejected is terminal.
func (s FarmerStatus) CanTransitionTo(next FarmerStatus) bool {
	for _, allowed := range farmerTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ParseFarmerStatus decodes a stored farmer status.
func ParseFarmerStatus(s string) (FarmerStatus, error) {
	status := FarmerStatus(s)
	if !status.IsValid() {
		return "", &DecodeError{Field: "status", Value: s}
	}

	return status, nil
}
