package invoice

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/numerator"
	"fakturo/internal/core/tx"
	"fakturo/internal/domain/artifact"
	"fakturo/internal/domain/catalogs/client"
	"fakturo/internal/domain/catalogs/product"
	"fakturo/pkg/logger"
)

// Service is the invoice lifecycle engine. It owns creation, mutation while
// the invoice is still mutable, status transitions, and deletion including
// best-effort cleanup of rendered artifacts.
type Service struct {
	repo      Repository
	clients   client.Repository
	products  product.Repository
	artifacts artifact.Store
	numerator numerator.Generator
	txManager tx.Manager

	numberCfg numerator.Config
}

// NewService creates the lifecycle engine.
func NewService(
	repo Repository,
	clients client.Repository,
	products product.Repository,
	artifacts artifact.Store,
	gen numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		clients:   clients,
		products:  products,
		artifacts: artifacts,
		numerator: gen,
		txManager: txManager,
		numberCfg: numerator.DefaultConfig("INV"),
	}
}

// Create validates references, snapshots client and product data, recomputes
// totals, assigns a number when none is given, and persists header plus items
// atomically. The returned invoice always starts in draft.
func (s *Service) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	if err := inv.Validate(ctx); err != nil {
		return nil, err
	}

	cl, err := s.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewValidation("unknown client").
				WithDetail("clientId", inv.ClientID.String())
		}
		return nil, err
	}

	if err := s.resolveItems(ctx, inv); err != nil {
		return nil, err
	}

	inv.EnsureIdentity()
	inv.ClientName = cl.Name
	inv.Status = StatusDraft
	inv.RecalculateTotals()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if inv.Number == "" {
			number, err := s.numerator.NextNumber(ctx, s.numberCfg, inv.Date)
			if err != nil {
				return fmt.Errorf("generate invoice number: %w", err)
			}
			inv.Number = number
		}
		return s.repo.CreateWithItems(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice created",
		"id", inv.ID.String(),
		"number", inv.Number,
		"total", inv.Total.String(),
	)
	return inv, nil
}

// GetByID retrieves an invoice with its items in line order.
func (s *Service) GetByID(ctx context.Context, invID id.ID) (*Invoice, error) {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetItems(ctx, invID)
	if err != nil {
		return nil, fmt.Errorf("get invoice items: %w", err)
	}
	inv.Items = items
	return inv, nil
}

// Update replaces the header fields and full item set of a mutable invoice.
// Status, number and document type are not updatable here; totals are
// recomputed from the submitted items.
func (s *Service) Update(ctx context.Context, inv *Invoice) (*Invoice, error) {
	current, err := s.repo.GetByID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	if !current.Status.Mutable() {
		return nil, apperror.NewImmutableState("invoice", string(current.Status))
	}

	inv.Number = current.Number
	inv.Status = current.Status
	inv.CreatedAt = current.CreatedAt
	inv.DocumentType = current.DocumentType

	if err := inv.Validate(ctx); err != nil {
		return nil, err
	}

	if inv.ClientID != current.ClientID {
		cl, err := s.clients.GetByID(ctx, inv.ClientID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.NewValidation("unknown client").
					WithDetail("clientId", inv.ClientID.String())
			}
			return nil, err
		}
		inv.ClientName = cl.Name
	} else {
		inv.ClientName = current.ClientName
	}

	if err := s.resolveItems(ctx, inv); err != nil {
		return nil, err
	}
	inv.RecalculateTotals()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateHeader(ctx, inv); err != nil {
			return err
		}
		return s.repo.ReplaceItems(ctx, inv.ID, inv.Items)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateStatus moves an invoice along the lifecycle. Setting the current
// status again is an idempotent no-op; anything not on the transition graph
// fails with InvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, invID id.ID, target Status) (*Invoice, error) {
	if _, err := ParseStatus(string(target)); err != nil {
		return nil, err
	}

	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return nil, err
	}

	if inv.Status == target {
		return inv, nil
	}
	if !inv.Status.CanTransition(target) {
		return nil, apperror.NewInvalidTransition(string(inv.Status), string(target))
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateStatus(ctx, invID, target)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice status changed",
		"id", invID.String(),
		"number", inv.Number,
		"from", string(inv.Status),
		"to", string(target),
	)
	inv.Status = target
	return inv, nil
}

// Delete removes an invoice with its items and then cleans up any rendered
// artifacts for the invoice's period. Artifact cleanup is best effort: the
// record delete has already committed, failures are logged and swallowed.
func (s *Service) Delete(ctx context.Context, invID id.ID) error {
	inv, err := s.repo.GetByID(ctx, invID)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, invID)
	})
	if err != nil {
		return err
	}

	s.cleanupArtifacts(ctx, inv)

	logger.Info(ctx, "invoice deleted", "id", invID.String(), "number", inv.Number)
	return nil
}

// List retrieves all invoices, most recent issue date first. Items are not
// loaded for listings.
func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListAll(ctx)
}

// History retrieves all invoices for one client, most recent first.
func (s *Service) History(ctx context.Context, clientID id.ID) ([]*Invoice, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListByClient(ctx, clientID)
}

// resolveItems verifies every product reference and snapshots name and price.
// A caller-supplied unit price wins over the catalog price so manual
// adjustments survive; a zero-value price falls back to the catalog.
func (s *Service) resolveItems(ctx context.Context, inv *Invoice) error {
	for i := range inv.Items {
		item := &inv.Items[i]
		prod, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewValidation("unknown product").
					WithDetail("productId", item.ProductID.String()).
					WithDetail("lineNo", i+1)
			}
			return err
		}
		item.ProductName = prod.Name
		if item.UnitPrice.IsZero() {
			item.UnitPrice = prod.Price
		}
	}
	return nil
}

func (s *Service) cleanupArtifacts(ctx context.Context, inv *Invoice) {
	year, month := inv.ArtifactPeriod()
	for _, docType := range artifact.AllTypes() {
		key := artifact.Key{
			DocumentType:  docType,
			Year:          year,
			Month:         month,
			InvoiceNumber: inv.Number,
		}
		if err := s.artifacts.Delete(ctx, key); err != nil {
			if apperror.IsNotFound(err) {
				continue
			}
			logger.Warn(ctx, "artifact cleanup failed",
				"number", inv.Number,
				"documentType", string(docType),
				"error", err.Error(),
			)
		}
	}
}
