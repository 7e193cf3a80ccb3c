package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/catalogs/supplier"
)

// SupplierHandler extends the generic catalog handler with soft deactivation.
type SupplierHandler struct {
	*CatalogHandler[*supplier.Supplier]
	service *supplier.Service
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHandler {
	return &SupplierHandler{
		CatalogHandler: NewCatalogHandler(base, service.CatalogService,
			func() *supplier.Supplier { return &supplier.Supplier{} }),
		service: service,
	}
}

// Deactivate handles POST /suppliers/:id/deactivate.
func (h *SupplierHandler) Deactivate(c *gin.Context) {
	supplierID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), supplierID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "supplier deactivated")
}
