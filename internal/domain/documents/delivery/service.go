package delivery

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/numerator"
	"fakturo/internal/core/tx"
	"fakturo/internal/domain/catalogs/client"
	"fakturo/internal/domain/catalogs/product"
	"fakturo/pkg/logger"
)

const defaultStatus = "prepared"

// Service provides business operations for delivery notes.
type Service struct {
	repo      Repository
	clients   client.Repository
	products  product.Repository
	numerator numerator.Generator
	txManager tx.Manager

	numberCfg numerator.Config
}

// NewService creates a new delivery service.
func NewService(
	repo Repository,
	clients client.Repository,
	products product.Repository,
	gen numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		clients:   clients,
		products:  products,
		numerator: gen,
		txManager: txManager,
		numberCfg: numerator.DefaultConfig("DLV"),
	}
}

// Create validates references, snapshots names, assigns a number when none is
// given, and persists header plus items atomically.
func (s *Service) Create(ctx context.Context, d *Delivery) (*Delivery, error) {
	if err := d.Validate(ctx); err != nil {
		return nil, err
	}

	cl, err := s.clients.GetByID(ctx, d.ClientID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewValidation("unknown client").
				WithDetail("clientId", d.ClientID.String())
		}
		return nil, err
	}

	for i := range d.Items {
		item := &d.Items[i]
		prod, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.NewValidation("unknown product").
					WithDetail("productId", item.ProductID.String()).
					WithDetail("lineNo", i+1)
			}
			return nil, err
		}
		item.LineNo = i + 1
		item.ProductName = prod.Name
	}

	d.EnsureIdentity()
	d.ClientName = cl.Name
	if d.Status == "" {
		d.Status = defaultStatus
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if d.Number == "" {
			number, err := s.numerator.NextNumber(ctx, s.numberCfg, d.Date)
			if err != nil {
				return fmt.Errorf("generate delivery number: %w", err)
			}
			d.Number = number
		}
		return s.repo.CreateWithItems(ctx, d)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "delivery created", "id", d.ID.String(), "number", d.Number)
	return d, nil
}

// GetByID retrieves a delivery with its items in line order.
func (s *Service) GetByID(ctx context.Context, deliveryID id.ID) (*Delivery, error) {
	d, err := s.repo.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetItems(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery items: %w", err)
	}
	d.Items = items
	return d, nil
}

// Delete removes a delivery with its items.
func (s *Service) Delete(ctx context.Context, deliveryID id.ID) error {
	if _, err := s.repo.GetByID(ctx, deliveryID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, deliveryID)
	})
}

// List retrieves all deliveries, most recent first.
func (s *Service) List(ctx context.Context) ([]*Delivery, error) {
	return s.repo.ListAll(ctx)
}
