package product

import (
	"context"

	"fakturo/internal/core/id"
	"fakturo/internal/core/tx"
	"fakturo/internal/domain"
)

// Service provides business operations for products.
type Service struct {
	*domain.CatalogService[*Product]

	repo      Repository
	txManager tx.Manager
}

// NewService creates a new product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Product](repo, txManager, "product"),
		repo:           repo,
		txManager:      txManager,
	}
}

// GetByCode retrieves a product by its natural code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Product, error) {
	return s.repo.GetByCode(ctx, code)
}

// Deactivate soft-deletes a product: it disappears from default listings but
// existing invoice items keep referencing it.
func (s *Service) Deactivate(ctx context.Context, productID id.ID) error {
	if _, err := s.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Deactivate(ctx, productID)
	})
}
