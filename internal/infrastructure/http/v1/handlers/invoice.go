package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/types"
	"fakturo/internal/domain/artifact"
	"fakturo/internal/domain/documents/invoice"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves the invoice lifecycle API.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// Create handles POST /invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv, ok := h.mapCreateRequest(c, req)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), inv)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// Get handles GET /invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	invID, ok := h.ParseID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetByID(c.Request.Context(), invID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, inv)
}

// Update handles PUT /invoices/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	invID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
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

	inv := &invoice.Invoice{
		ClientID: clientID,
		Date:     date,
	}
	inv.ID = invID
	if !h.applyOptional(c, inv, req.DueDate, req.Notes) {
		return
	}

	items, ok := h.mapItems(c, req.Items)
	if !ok {
		return
	}
	inv.Items = items

	updated, err := h.service.Update(c.Request.Context(), inv)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// UpdateStatus handles PATCH /invoices/:id/status.
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	invID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv, err := h.service.UpdateStatus(c.Request.Context(), invID, invoice.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, inv)
}

// Delete handles DELETE /invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	invID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), invID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List handles GET /invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, invoices, len(invoices))
}

// History handles GET /clients/:id/invoices.
func (h *InvoiceHandler) History(c *gin.Context) {
	clientID, ok := h.ParseID(c)
	if !ok {
		return
	}

	invoices, err := h.service.History(c.Request.Context(), clientID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, invoices, len(invoices))
}

func (h *InvoiceHandler) mapCreateRequest(c *gin.Context, req dto.CreateInvoiceRequest) (*invoice.Invoice, bool) {
	clientID, err := id.Parse(req.ClientID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid client id").WithDetail("clientId", req.ClientID))
		return nil, false
	}

	date, ok := h.ParseDate(c, "date", req.Date)
	if !ok {
		return nil, false
	}

	inv := invoice.New(artifact.DocumentType(req.DocumentType), clientID, date)
	inv.Number = req.Number
	if !h.applyOptional(c, inv, req.DueDate, req.Notes) {
		return nil, false
	}

	items, ok := h.mapItems(c, req.Items)
	if !ok {
		return nil, false
	}
	inv.Items = items
	return inv, true
}

func (h *InvoiceHandler) applyOptional(c *gin.Context, inv *invoice.Invoice, dueDate, notes string) bool {
	if dueDate != "" {
		due, ok := h.ParseDate(c, "dueDate", dueDate)
		if !ok {
			return false
		}
		inv.DueDate = &due
	}
	if notes != "" {
		inv.Notes = &notes
	}
	return true
}

func (h *InvoiceHandler) mapItems(c *gin.Context, reqs []dto.InvoiceItemRequest) ([]invoice.Item, bool) {
	items := make([]invoice.Item, 0, len(reqs))
	for i, r := range reqs {
		productID, err := id.Parse(r.ProductID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid product id").
				WithDetail("productId", r.ProductID).
				WithDetail("lineNo", i+1))
			return nil, false
		}

		item := invoice.Item{
			LineNo:    i + 1,
			ProductID: productID,
			Quantity:  r.Quantity,
		}
		if r.UnitPrice != "" {
			price, err := types.NewMoneyFromString(r.UnitPrice)
			if err != nil {
				h.Error(c, apperror.NewValidation("invalid unit price").
					WithDetail("unitPrice", r.UnitPrice).
					WithDetail("lineNo", i+1))
				return nil, false
			}
			item.UnitPrice = price
		}
		items = append(items, item)
	}
	return items, true
}
