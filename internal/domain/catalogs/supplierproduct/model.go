// Package supplierproduct provides the SupplierProduct reference catalog:
// product lines offered within a supplier sector.
package supplierproduct

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// SupplierProduct is a product line within a supplier sector.
type SupplierProduct struct {
	entity.Base

	Name string `db:"name" json:"name"`

	// SectorID is the owning sector
	SectorID id.ID `db:"sector_id" json:"sectorId"`
}

// New creates a new SupplierProduct with generated identity.
func New(name string, sectorID id.ID) *SupplierProduct {
	return &SupplierProduct{
		Base:     entity.NewBase(),
		Name:     name,
		SectorID: sectorID,
	}
}

// Validate implements entity.Validatable.
func (p *SupplierProduct) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if id.IsNil(p.SectorID) {
		return apperror.NewValidation("sector is required").
			WithDetail("field", "sectorId")
	}
	return nil
}
