package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmerStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to FarmerStatus
		allowed  bool
	}{
		{FarmerStatusPending, FarmerStatusApproved, true},
		{FarmerStatusPending, FarmerStatusRejected, true},
		{FarmerStatusPending, FarmerStatusSuspended, false},
		{FarmerStatusApproved, FarmerStatusSuspended, true},
		{FarmerStatusSuspended, FarmerStatusApproved, true},
		{FarmerStatusApproved, FarmerStatusRejected, false},
		{FarmerStatusApproved, FarmerStatusPending, false},
		{FarmerStatusRejected, FarmerStatusApproved, false},
		{FarmerStatusRejected, FarmerStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseFarmerStatus(t *testing.T) {
	status, err := ParseFarmerStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, FarmerStatusApproved, status)

	_, err = ParseFarmerStatus("Aprobado")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "status", decodeErr.Field)
	assert.Equal(t, "Aprobado", decodeErr.Value)
}

func TestParseEnums_RejectUnknownValues(t *testing.T) {
	_, err := ParseCoffeeType("liberica")
	assert.Error(t, err)

	_, err = ParseRoastLevel("extra")
	assert.Error(t, err)

	_, err = ParseUserType("guest")
	assert.Error(t, err)

	roast, err := ParseRoastLevel("very-dark")
	require.NoError(t, err)
	assert.Equal(t, RoastLevelVeryDark, roast)
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ana Ruiz", (&User{FirstName: "Ana", LastName: "Ruiz"}).FullName())
	assert.Equal(t, "Ana", (&User{FirstName: "Ana"}).FullName())
	assert.Equal(t, "Ruiz", (&User{LastName: "Ruiz"}).FullName())
}
