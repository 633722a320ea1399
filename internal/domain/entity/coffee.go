package entity

import "time"

// Coffee is a product offered by a coffee farmer.
//
// IsFavorite is derived for a specific viewer and is never stored with the
// coffee record.
type Coffee struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Type              CoffeeType `json:"type"`
	RoastLevel        RoastLevel `json:"roastLevel"`
	PricePerUnit      float64    `json:"pricePerUnit"`
	AvailableQuantity int        `json:"availableQuantity"`
	ImageURL          string     `json:"imageUrl"`
	FarmerID          string     `json:"farmerId"`
	TownID            string     `json:"townId"`
	Rating            float64    `json:"rating"`
	Notes             []string   `json:"notes"`
	Altitude          int        `json:"altitude"`
	Varieties         []string   `json:"varieties"`
	Certifications    []string   `json:"certifications"`
	CreatedDate       time.Time  `json:"createdDate"`
	IsFavorite        bool       `json:"isFavorite"`
}

// CoffeeType is the botanical species of a coffee.
type CoffeeType string

const (
	CoffeeTypeArabica CoffeeType = "arabica"
	CoffeeTypeRobusta CoffeeType = "robusta"
	CoffeeTypeHybrid  CoffeeType = "hybrid"
)

// String returns the string representation of the CoffeeType.
func (t CoffeeType) String() string {
	return string(t)
}

// IsValid checks if the CoffeeType is a valid value.
func (t CoffeeType) IsValid() bool {
	switch t {
	case CoffeeTypeArabica, CoffeeTypeRobusta, CoffeeTypeHybrid:
		return true
	default:
		return false
	}
}

// ParseCoffeeType decodes a stored coffee type.
func ParseCoffeeType(s string) (CoffeeType, error) {
	t := CoffeeType(s)
	if !t.IsValid() {
		return "", &DecodeError{Field: "coffeeType", Value: s}
	}

	return t, nil
}

// RoastLevel is how dark a coffee is roasted.
type RoastLevel string

const (
	RoastLevelLight    RoastLevel = "light"
	RoastLevelMedium   RoastLevel = "medium"
	RoastLevelDark     RoastLevel = "dark"
	RoastLevelVeryDark RoastLevel = "very-dark"
)

// String returns the string representation of the RoastLevel.
func (r RoastLevel) String() string {
	return string(r)
}

// IsValid checks if the RoastLevel is a valid value.
func (r RoastLevel) IsValid() bool {
	switch r {
	case RoastLevelLight, RoastLevelMedium, RoastLevelDark, RoastLevelVeryDark:
		return true
	default:
		return false
	}
}

// ParseRoastLevel decodes a stored roast level.
func ParseRoastLevel(s string) (RoastLevel, error) {
	r := RoastLevel(s)
	if !r.IsValid() {
		return "", &DecodeError{Field: "roastLevel", Value: s}
	}

	return r, nil
}
