// Package suppliersector provides the SupplierSector reference catalog.
// Sectors group supplier product lines; deleting a sector cascades to its
// supplier products.
package suppliersector

import (
	"context"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
)

// SupplierSector is a supplier industry grouping.
type SupplierSector struct {
	entity.Base

	// Name is unique across sectors
	Name string `db:"name" json:"name"`
}

// New creates a new SupplierSector with generated identity.
func New(name string) *SupplierSector {
	return &SupplierSector{
		Base: entity.NewBase(),
		Name: name,
	}
}

// Validate implements entity.Validatable.
func (s *SupplierSector) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
