package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/catalogs/product"
)

// ProductHandler extends the generic catalog handler with product-specific
// routes.
type ProductHandler struct {
	*CatalogHandler[*product.Product]
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, service.CatalogService,
			func() *product.Product { return &product.Product{} }),
		service: service,
	}
}

// GetByCode handles GET /products/code/:code.
func (h *ProductHandler) GetByCode(c *gin.Context) {
	prod, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, prod)
}

// Deactivate handles POST /products/:id/deactivate.
func (h *ProductHandler) Deactivate(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "product deactivated")
}
