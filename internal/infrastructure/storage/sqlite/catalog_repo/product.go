package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"fakturo/internal/core/id"
	"fakturo/internal/domain/catalogs/product"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo persists products.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *sqlite.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, Config{
			TableName:  "products",
			EntityName: "product",
			SearchCols: []string{"name", "code"},
			ActiveCol:  "active",
		}, func() *product.Product { return &product.Product{} }),
	}
}

// GetByCode retrieves a product by its natural code.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	q := r.Builder().
		Select(r.selectCols...).
		From(r.cfg.TableName).
		Where(squirrel.Eq{"code": code}).
		Limit(1)
	return r.FindOne(ctx, q, code)
}

// Deactivate hides the product from default listings while keeping
// historical references valid.
func (r *ProductRepo) Deactivate(ctx context.Context, productID id.ID) error {
	return r.SetActive(ctx, productID, false)
}
