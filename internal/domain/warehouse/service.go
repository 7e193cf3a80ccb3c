package warehouse

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/tx"
	"fakturo/internal/domain"
	"fakturo/internal/domain/catalogs/product"
)

// Service provides business operations for warehouse groups.
type Service struct {
	*domain.CatalogService[*Group]

	repo      Repository
	products  product.Repository
	txManager tx.Manager
}

// NewService creates a new warehouse group service.
func NewService(repo Repository, products product.Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Group](repo, txManager, "warehouse group"),
		repo:           repo,
		products:       products,
		txManager:      txManager,
	}
}

// GetWithItems retrieves a group together with its memberships.
func (s *Service) GetWithItems(ctx context.Context, groupID id.ID) (*Group, []*Item, error) {
	group, err := s.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.repo.GetItems(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("get group items: %w", err)
	}
	return group, items, nil
}

// AddItem validates the product reference, snapshots its code and name, and
// stores the membership.
func (s *Service) AddItem(ctx context.Context, item *Item) error {
	if err := item.Validate(ctx); err != nil {
		return err
	}

	if _, err := s.GetByID(ctx, item.GroupID); err != nil {
		return err
	}

	prod, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("unknown product").
				WithDetail("productId", item.ProductID.String())
		}
		return err
	}

	item.EnsureIdentity()
	item.ProductCode = prod.Code
	item.ProductName = prod.Name

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.AddItem(ctx, item)
	})
}

// DeleteItem removes one membership.
func (s *Service) DeleteItem(ctx context.Context, groupID, productID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.DeleteItem(ctx, groupID, productID)
	})
}

// Delete removes a group and cascades to its memberships.
func (s *Service) Delete(ctx context.Context, groupID id.ID) error {
	if _, err := s.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.DeleteWithItems(ctx, groupID)
	})
}
