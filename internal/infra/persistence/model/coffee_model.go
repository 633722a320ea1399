package model

import "time"

// CoffeeModel is the document stored at coffees/{id}. Favorite flags are
// kept per user and never written here.
type CoffeeModel struct {
	Name              string    `firestore:"name" json:"name"`
	Description       string    `firestore:"description" json:"description"`
	Type              string    `firestore:"type" json:"type"`
	RoastLevel        string    `firestore:"roastLevel" json:"roastLevel"`
	PricePerUnit      float64   `firestore:"pricePerUnit" json:"pricePerUnit"`
	AvailableQuantity int       `firestore:"availableQuantity" json:"availableQuantity"`
	ImageURL          string    `firestore:"imageUrl" json:"imageUrl"`
	FarmerID          string    `firestore:"farmerId" json:"farmerId"`
	TownID            string    `firestore:"townId" json:"townId"`
	Rating            float64   `firestore:"rating" json:"rating"`
	Notes             []string  `firestore:"notes" json:"notes"`
	Altitude          int       `firestore:"altitude" json:"altitude"`
	Varieties         []string  `firestore:"varieties" json:"varieties"`
	Certifications    []string  `firestore:"certifications" json:"certifications"`
	CreatedDate       time.Time `firestore:"createdDate" json:"createdDate"`
}

// FavoriteModel is the document stored at users/{uid}/favorites/{coffeeId}.
type FavoriteModel struct {
	AddedDate time.Time `firestore:"addedDate" json:"addedDate"`
}
