package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple address", input: "ana@example.com", valid: true},
		{name: "surrounding whitespace is trimmed", input: "  ana@example.com \n", valid: true},
		{name: "subdomain", input: "ana@mail.example.co", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "only spaces", input: "   ", valid: false},
		{name: "missing at", input: "ana.example.com", valid: false},
		{name: "missing dot after at", input: "ana@example", valid: false},
		{name: "inner whitespace", input: "an a@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Email(tt.input)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestEmail_RequiredMessage(t *testing.T) {
	assert.Equal(t, "email is required", Email(" ").Message)
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		minLength int
		valid     bool
	}{
		{name: "exactly minimum", input: "123456", minLength: 6, valid: true},
		{name: "one below minimum", input: "12345", minLength: 6, valid: false},
		{name: "empty", input: "", minLength: 6, valid: false},
		{name: "zero minimum falls back to default", input: "12345", minLength: 0, valid: false},
		{name: "multibyte characters count once", input: "ñññññ", minLength: 5, valid: true},
		{name: "custom minimum", input: "abcdefgh", minLength: 8, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Password(tt.input, tt.minLength).Valid)
		})
	}
}

func TestPasswordMatch(t *testing.T) {
	assert.True(t, PasswordMatch("secret1", "secret1").Valid)
	assert.False(t, PasswordMatch("secret1", "secret2").Valid)
}

func TestNationalID(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "1", valid: true},
		{input: "1234567890", valid: true},
		{input: " 12345 ", valid: true},
		{input: "12345678901", valid: false},
		{input: "12a45", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, NationalID(tt.input).Valid)
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "3001234567", valid: true},
		{input: " 3001234567 ", valid: true},
		{input: "300123456", valid: false},
		{input: "30012345678", valid: false},
		{input: "300-123-4567", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, Phone(tt.input).Valid)
		})
	}
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("farm name", "La Esperanza").Valid)

	result := Required("farm name", "  ")
	assert.False(t, result.Valid)
	assert.Equal(t, "farm name is required", result.Message)
}
