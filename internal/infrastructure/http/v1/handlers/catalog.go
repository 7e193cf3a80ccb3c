package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain"
)

// CatalogHandler provides generic HTTP handlers for catalog entities.
// Entities carry their own json tags, so requests bind straight into the
// domain type and responses serialize it back.
type CatalogHandler[T domain.CatalogEntity] struct {
	*BaseHandler
	service *domain.CatalogService[T]
	newFn   func() T
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T domain.CatalogEntity](
	base *BaseHandler,
	service *domain.CatalogService[T],
	newFn func() T,
) *CatalogHandler[T] {
	return &CatalogHandler[T]{
		BaseHandler: base,
		service:     service,
		newFn:       newFn,
	}
}

// List handles GET /{entity}.
func (h *CatalogHandler[T]) List(c *gin.Context) {
	filter := domain.ListFilter{
		Search:          c.Query("search"),
		IncludeInactive: c.Query("includeInactive") == "true",
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, items, len(items))
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T]) Get(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entity)
}

// Create handles POST /{entity}.
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	entity := h.newFn()
	if !h.BindJSON(c, entity) {
		return
	}

	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entity)
}

// Update handles PUT /{entity}/:id. The body binds over the stored entity,
// so omitted fields keep their current values; identity never changes.
func (h *CatalogHandler[T]) Update(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if !h.BindJSON(c, entity) {
		return
	}

	// The body must not re-point the record at another identity.
	if entity.EntityID() != entityID {
		h.Error(c, apperror.NewValidation("id in body does not match path").
			WithDetail("id", c.Param("id")))
		return
	}

	if err := h.service.Update(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entity)
}

// Delete handles DELETE /{entity}/:id.
func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
