package entity

// Catalog is a batch of directory records imported together.
type Catalog struct {
	Towns   []*Town
	Coffees []*Coffee
	Farmers []*CoffeeFarmer
}
