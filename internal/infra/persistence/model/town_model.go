package model

import "time"

// TownModel is the document stored at towns/{id}.
type TownModel struct {
	Name        string    `firestore:"name" json:"name"`
	Department  string    `firestore:"department" json:"department"`
	Description string    `firestore:"description" json:"description"`
	PostalCode  string    `firestore:"postalCode" json:"postalCode"`
	Latitude    float64   `firestore:"latitude" json:"latitude"`
	Longitude   float64   `firestore:"longitude" json:"longitude"`
	ImageURL    string    `firestore:"imageUrl" json:"imageUrl"`
	CoffeeCount int       `firestore:"coffeeCount" json:"coffeeCount"`
	FarmerCount int       `firestore:"farmerCount" json:"farmerCount"`
	IsActive    bool      `firestore:"isActive" json:"isActive"`
	CreatedDate time.Time `firestore:"createdDate" json:"createdDate"`
}
