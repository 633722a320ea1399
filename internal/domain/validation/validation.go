// Package validation holds the pure input validators used by the use cases.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMinPasswordLength is used when no minimum is configured.
const DefaultMinPasswordLength = 6

var (
	emailPattern      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nationalIDPattern = regexp.MustCompile(`^\d{1,10}$`)
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
)

// Result is the outcome of a single validation.
type Result struct {
	Valid   bool
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string) Result {
	return Result{Message: message}
}

// Email checks a trimmed email address.
func Email(email string) Result {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email is required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("enter a valid email address")
	}

	return valid()
}

// Password checks that password is present and at least minLength characters.
func Password(password string, minLength int) Result {
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}
	if password == "" {
		return invalid("password is required")
	}
	if utf8.RuneCountInString(password) < minLength {
		return invalid(fmt.Sprintf("password must be at least %d characters", minLength))
	}

	return valid()
}

// PasswordMatch checks that the confirmation equals the password.
func PasswordMatch(password, confirmation string) Result {
	if password != confirmation {
		return invalid("passwords do not match")
	}

	return valid()
}

// NationalID checks a trimmed national identity number of 1 to 10 digits.
func NationalID(id string) Result {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("national id is required")
	}
	if !nationalIDPattern.MatchString(id) {
		return invalid("national id must contain only digits (max 10)")
	}

	return valid()
}

// Phone checks a trimmed phone number of exactly 10 digits.
func Phone(phone string) Result {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return invalid("phone number is required")
	}
	if !phonePattern.MatchString(phone) {
		return invalid("phone number must have 10 digits")
	}

	return valid()
}

// Required checks that value is not blank.
func Required(field, value string) Result {
	if strings.TrimSpace(value) == "" {
		return invalid(field + " is required")
	}

	return valid()
}
