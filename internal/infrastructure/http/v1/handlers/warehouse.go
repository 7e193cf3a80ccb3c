package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
	"fakturo/internal/domain/warehouse"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// WarehouseHandler serves warehouse groups and their memberships.
type WarehouseHandler struct {
	*BaseHandler
	service *warehouse.Service
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHandler {
	return &WarehouseHandler{BaseHandler: base, service: service}
}

// Get handles GET /warehouse-groups/:id - group with its items.
func (h *WarehouseHandler) Get(c *gin.Context) {
	groupID, ok := h.ParseID(c)
	if !ok {
		return
	}

	group, items, err := h.service.GetWithItems(c.Request.Context(), groupID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"group": group, "items": items})
}

// AddItem handles POST /warehouse-groups/:id/items.
func (h *WarehouseHandler) AddItem(c *gin.Context) {
	groupID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.AddWarehouseItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	productID, err := id.Parse(req.ProductID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id").WithDetail("productId", req.ProductID))
		return
	}

	item := &warehouse.Item{
		Base:      entity.NewBase(),
		GroupID:   groupID,
		ProductID: productID,
		Quantity:  req.Quantity,
	}
	if req.Notes != "" {
		item.Notes = &req.Notes
	}

	if err := h.service.AddItem(c.Request.Context(), item); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, item)
}

// DeleteItem handles DELETE /warehouse-groups/:id/items/:productId.
func (h *WarehouseHandler) DeleteItem(c *gin.Context) {
	groupID, ok := h.ParseID(c)
	if !ok {
		return
	}

	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id").WithDetail("productId", c.Param("productId")))
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), groupID, productID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /warehouse-groups/:id - group and memberships.
func (h *WarehouseHandler) Delete(c *gin.Context) {
	groupID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), groupID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
