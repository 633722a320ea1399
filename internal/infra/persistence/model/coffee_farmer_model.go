package model

import "time"

// CoffeeFarmerModel is the document stored at coffee_farmers/{id}.
type CoffeeFarmerModel struct {
	UserID             string     `firestore:"userId" json:"userId"`
	FarmName           string     `firestore:"farmName" json:"farmName"`
	FarmDescription    string     `firestore:"farmDescription" json:"farmDescription"`
	TownID             string     `firestore:"townId" json:"townId"`
	Hectares           float64    `firestore:"hectares" json:"hectares"`
	Altitude           int        `firestore:"altitude" json:"altitude"`
	CoffeeTypes        []string   `firestore:"coffeeTypes" json:"coffeeTypes"`
	Certifications     []string   `firestore:"certifications" json:"certifications"`
	ImageURL           string     `firestore:"imageUrl" json:"imageUrl"`
	Latitude           float64    `firestore:"latitude" json:"latitude"`
	Longitude          float64    `firestore:"longitude" json:"longitude"`
	Status             string     `firestore:"status" json:"status"`
	AnnualProduction   int        `firestore:"annualProduction" json:"annualProduction"`
	MainContact        string     `firestore:"mainContact" json:"mainContact"`
	ContactPhone       string     `firestore:"contactPhone" json:"contactPhone"`
	ContactEmail       string     `firestore:"contactEmail" json:"contactEmail"`
	YearsOfExperience  int        `firestore:"yearsOfExperience" json:"yearsOfExperience"`
	CultivationMethods []string   `firestore:"cultivationMethods" json:"cultivationMethods"`
	Rating             float64    `firestore:"rating" json:"rating"`
	ProductCount       int        `firestore:"productCount" json:"productCount"`
	IsVerified         bool       `firestore:"isVerified" json:"isVerified"`
	ApplicationDate    time.Time  `firestore:"applicationDate" json:"applicationDate"`
	VerificationDate   *time.Time `firestore:"verificationDate,omitempty" json:"verificationDate,omitempty"`
	RejectionReason    string     `firestore:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
}

// Farmer document field names used in queries and partial updates.
const (
	FarmerFieldUserID           = "userId"
	FarmerFieldTownID           = "townId"
	FarmerFieldStatus           = "status"
	FarmerFieldRating           = "rating"
	FarmerFieldIsVerified       = "isVerified"
	FarmerFieldApplicationDate  = "applicationDate"
	FarmerFieldVerificationDate = "verificationDate"
	FarmerFieldRejectionReason  = "rejectionReason"

	FarmerFieldFarmName           = "farmName"
	FarmerFieldFarmDescription    = "farmDescription"
	FarmerFieldHectares           = "hectares"
	FarmerFieldAltitude           = "altitude"
	FarmerFieldCoffeeTypes        = "coffeeTypes"
	FarmerFieldCertifications     = "certifications"
	FarmerFieldImageURL           = "imageUrl"
	FarmerFieldLatitude           = "latitude"
	FarmerFieldLongitude          = "longitude"
	FarmerFieldAnnualProduction   = "annualProduction"
	FarmerFieldMainContact        = "mainContact"
	FarmerFieldContactPhone       = "contactPhone"
	FarmerFieldContactEmail       = "contactEmail"
	FarmerFieldYearsOfExperience  = "yearsOfExperience"
	FarmerFieldCultivationMethods = "cultivationMethods"
)
