package usecase

import (
	"context"

	"townscoffee/internal/domain/entity"
)

// ImportCatalogOutput counts the records written.
type ImportCatalogOutput struct {
	Towns   int
	Coffees int
	Farmers int
}

// CatalogUsecase loads directory data in bulk.
type CatalogUsecase interface {
	// ImportCatalog validates every record first and writes nothing if any
	// record is invalid.
	ImportCatalog(ctx context.Context, catalog *entity.Catalog) (*ImportCatalogOutput, error)
}
