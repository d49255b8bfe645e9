package usecase

import (
	"github.com/piresc/nearfix/services/catalog"
)

// CatalogUC implements catalog.CatalogUC
type CatalogUC struct {
	catalogRepo catalog.CatalogRepo
	catalogGW   catalog.CatalogGW
}

// NewCatalogUC creates a new catalog use case
func NewCatalogUC(catalogRepo catalog.CatalogRepo, catalogGW catalog.CatalogGW) *CatalogUC {
	return &CatalogUC{
		catalogRepo: catalogRepo,
		catalogGW:   catalogGW,
	}
}
