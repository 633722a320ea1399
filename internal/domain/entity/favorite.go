package entity

import "time"

// Favorite links a user to a coffee they marked.
type Favorite struct {
	UserID    string    `json:"userId"`
	CoffeeID  string    `json:"coffeeId"`
	AddedDate time.Time `json:"addedDate"`
}

// FavoriteAction selects what ManageFavorites does.
type FavoriteAction string

const (
	FavoriteActionAdd    FavoriteAction = "add"
	FavoriteActionRemove FavoriteAction = "remove"
	FavoriteActionToggle FavoriteAction = "toggle"
	FavoriteActionQuery  FavoriteAction = "query"
)

// IsValid checks if the FavoriteAction is a valid value.
func (a FavoriteAction) IsValid() bool {
	switch a {
	case FavoriteActionAdd, FavoriteActionRemove, FavoriteActionToggle, FavoriteActionQuery:
		return true
	default:
		return false
	}
}
