package catalog_repo

import (
	"fakturo/internal/domain/catalogs/category"
	"fakturo/internal/domain/catalogs/country"
	"fakturo/internal/domain/catalogs/subcategory"
	"fakturo/internal/domain/catalogs/supplierproduct"
	"fakturo/internal/domain/catalogs/suppliersector"
	"fakturo/internal/infrastructure/storage/sqlite"
)

// Plain reference catalogs: nothing beyond the generic base.

// NewCategoryRepo creates the category repository.
func NewCategoryRepo(txm *sqlite.TxManager) *BaseCatalogRepo[*category.Category] {
	return NewBaseCatalogRepo(txm, Config{
		TableName:  "categories",
		EntityName: "category",
		SearchCols: []string{"name"},
	}, func() *category.Category { return &category.Category{} })
}

// NewSubcategoryRepo creates the subcategory repository.
func NewSubcategoryRepo(txm *sqlite.TxManager) *BaseCatalogRepo[*subcategory.Subcategory] {
	return NewBaseCatalogRepo(txm, Config{
		TableName:  "subcategories",
		EntityName: "subcategory",
		SearchCols: []string{"name"},
	}, func() *subcategory.Subcategory { return &subcategory.Subcategory{} })
}

// NewCountryRepo creates the country repository.
func NewCountryRepo(txm *sqlite.TxManager) *BaseCatalogRepo[*country.Country] {
	return NewBaseCatalogRepo(txm, Config{
		TableName:  "countries",
		EntityName: "country",
		SearchCols: []string{"name", "code"},
	}, func() *country.Country { return &country.Country{} })
}

// NewSupplierSectorRepo creates the supplier sector repository.
func NewSupplierSectorRepo(txm *sqlite.TxManager) *BaseCatalogRepo[*suppliersector.SupplierSector] {
	return NewBaseCatalogRepo(txm, Config{
		TableName:  "supplier_sectors",
		EntityName: "supplier sector",
		SearchCols: []string{"name"},
	}, func() *suppliersector.SupplierSector { return &suppliersector.SupplierSector{} })
}

// NewSupplierProductRepo creates the supplier product repository.
func NewSupplierProductRepo(txm *sqlite.TxManager) *BaseCatalogRepo[*supplierproduct.SupplierProduct] {
	return NewBaseCatalogRepo(txm, Config{
		TableName:  "supplier_products",
		EntityName: "supplier product",
		SearchCols: []string{"name"},
	}, func() *supplierproduct.SupplierProduct { return &supplierproduct.SupplierProduct{} })
}
