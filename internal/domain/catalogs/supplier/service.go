package supplier

import (
	"context"

	"fakturo/internal/core/id"
	"fakturo/internal/core/tx"
	"fakturo/internal/domain"
)

// Service provides business operations for suppliers.
type Service struct {
	*domain.CatalogService[*Supplier]

	repo      Repository
	txManager tx.Manager
}

// NewService creates a new supplier service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Supplier](repo, txManager, "supplier"),
		repo:           repo,
		txManager:      txManager,
	}
}

// Deactivate soft-deletes a supplier.
func (s *Service) Deactivate(ctx context.Context, supplierID id.ID) error {
	if _, err := s.GetByID(ctx, supplierID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Deactivate(ctx, supplierID)
	})
}
