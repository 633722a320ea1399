// Package model contains the stored record layouts of the document store.
// Field names are shared by the firestore and json tags so both store
// implementations read and write the same documents.
package model

// Collection paths.
const (
	UsersCollection         = "users"
	TownsCollection         = "towns"
	CoffeesCollection       = "coffees"
	CoffeeFarmersCollection = "coffee_farmers"
)

// FavoritesCollection returns the per-user favorites sub-collection path.
func FavoritesCollection(userID string) string {
	return UsersCollection + "/" + userID + "/favorites"
}
