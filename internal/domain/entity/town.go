package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Town is a coffee-producing municipality. CoffeeCount and FarmerCount are
// advisory counters and may drift from the real number of related records.
type Town struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Description string    `json:"description"`
	PostalCode  string    `json:"postalCode"`
	Location    orb.Point `json:"location"` // [longitude, latitude]
	ImageURL    string    `json:"imageUrl"`
	CoffeeCount int       `json:"coffeeCount"`
	FarmerCount int       `json:"farmerCount"`
	IsActive    bool      `json:"isActive"`
	CreatedDate time.Time `json:"createdDate"`
}

// Latitude returns the town latitude.
func (t *Town) Latitude() float64 {
	return t.Location.Lat()
}

// Longitude returns the town longitude.
func (t *Town) Longitude() float64 {
	return t.Location.Lon()
}
