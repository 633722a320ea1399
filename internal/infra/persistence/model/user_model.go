package model

import "time"

// UserModel is the document stored at users/{id}. The id is the document id.
type UserModel struct {
	FirstName        string    `firestore:"firstName" json:"firstName"`
	LastName         string    `firestore:"lastName" json:"lastName"`
	NationalID       string    `firestore:"nationalId" json:"nationalId"`
	Email            string    `firestore:"email" json:"email"`
	Phone            string    `firestore:"phone" json:"phone"`
	State            string    `firestore:"state" json:"state"`
	City             string    `firestore:"city" json:"city"`
	ZipCode          string    `firestore:"zipCode" json:"zipCode"`
	Address          string    `firestore:"address" json:"address"`
	BirthDate        time.Time `firestore:"birthDate" json:"birthDate"`
	Type             string    `firestore:"type" json:"type"`
	RegistrationDate time.Time `firestore:"registrationDate" json:"registrationDate"`
}
