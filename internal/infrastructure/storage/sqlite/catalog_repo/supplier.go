package catalog_repo

import (
	"context"

	"fakturo/internal/core/id"
	"fakturo/internal/domain/catalogs/supplier"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ supplier.Repository = (*SupplierRepo)(nil)

// SupplierRepo persists suppliers.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *sqlite.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, Config{
			TableName:  "suppliers",
			EntityName: "supplier",
			SearchCols: []string{"name", "mb", "pib"},
			ActiveCol:  "active",
		}, func() *supplier.Supplier { return &supplier.Supplier{} }),
	}
}

// Deactivate hides the supplier from default listings.
func (r *SupplierRepo) Deactivate(ctx context.Context, supplierID id.ID) error {
	return r.SetActive(ctx, supplierID, false)
}
