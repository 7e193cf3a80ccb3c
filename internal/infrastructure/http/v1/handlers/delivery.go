package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
	"fakturo/internal/domain/documents/delivery"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// DeliveryHandler serves the delivery note API.
type DeliveryHandler struct {
	*BaseHandler
	service *delivery.Service
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(base *BaseHandler, service *delivery.Service) *DeliveryHandler {
	return &DeliveryHandler{BaseHandler: base, service: service}
}

// Create handles POST /deliveries.
func (h *DeliveryHandler) Create(c *gin.Context) {
	var req dto.CreateDeliveryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	clientID, err := id.Parse(req.ClientID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid client id").WithDetail("clientId", req.ClientID))
		return
	}

	date, ok := h.ParseDate(c, "date", req.Date)
	if !ok {
		return
	}

	d := &delivery.Delivery{
		Base:     entity.NewBase(),
		Number:   req.Number,
		ClientID: clientID,
		Date:     date,
		Status:   req.Status,
	}
	if req.Notes != "" {
		d.Notes = &req.Notes
	}

	for i, r := range req.Items {
		productID, err := id.Parse(r.ProductID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid product id").
				WithDetail("productId", r.ProductID).
				WithDetail("lineNo", i+1))
			return
		}
		d.Items = append(d.Items, delivery.Item{
			LineNo:    i + 1,
			ProductID: productID,
			Quantity:  r.Quantity,
		})
	}

	created, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// Get handles GET /deliveries/:id.
func (h *DeliveryHandler) Get(c *gin.Context) {
	deliveryID, ok := h.ParseID(c)
	if !ok {
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), deliveryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, d)
}

// Delete handles DELETE /deliveries/:id.
func (h *DeliveryHandler) Delete(c *gin.Context) {
	deliveryID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), deliveryID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List handles GET /deliveries.
func (h *DeliveryHandler) List(c *gin.Context) {
	deliveries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, deliveries, len(deliveries))
}
