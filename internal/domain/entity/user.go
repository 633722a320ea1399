// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account of the marketplace. Its ID is assigned by the
// identity provider and never changes.
type User struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	NationalID       string    `json:"nationalId"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	State            string    `json:"state"`
	City             string    `json:"city"`
	ZipCode          string    `json:"zipCode"`
	Address          string    `json:"address"`
	BirthDate        time.Time `json:"birthDate"`
	Type             UserType  `json:"type"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// IsAdmin reports whether the user may resolve farmer applications.
func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}

// UserType represents the kind of account a user holds.
type UserType string

const (
	// UserTypeCustomer is the default type assigned at sign up.
	UserTypeCustomer UserType = "customer"
	// UserTypeFarmer marks a user that sells coffee.
	UserTypeFarmer UserType = "farmer"
	// UserTypeAdmin marks an operator of the marketplace.
	UserTypeAdmin UserType = "admin"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCustomer, UserTypeFarmer, UserTypeAdmin:
		return true
	default:
		return false
	}
}

// ParseUserType decodes a stored user type.
func ParseUserType(s string) (UserType, error) {
	t := UserType(s)
	if !t.IsValid() {
		return "", &DecodeError{Field: "type", Value: s}
	}

	return t, nil
}
