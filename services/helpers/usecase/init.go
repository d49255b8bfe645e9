package usecase

import (
	"github.com/piresc/nearfix/services/catalog"
	"github.com/piresc/nearfix/services/helpers"
)

// HelperUC implements helpers.HelperUC
type HelperUC struct {
	helperRepo  helpers.HelperRepo
	catalogRepo catalog.CatalogRepo
	helperGW    helpers.HelperGW
}

// NewHelperUC creates a new helper use case
func NewHelperUC(helperRepo helpers.HelperRepo, catalogRepo catalog.CatalogRepo, helperGW helpers.HelperGW) *HelperUC {
	return &HelperUC{
		helperRepo:  helperRepo,
		catalogRepo: catalogRepo,
		helperGW:    helperGW,
	}
}
