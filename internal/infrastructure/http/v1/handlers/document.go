package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/artifact"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// DocumentHandler serves the rendered-document artifact API.
// Routes carry the full composite key:
// /documents/:type/:year/:month/:number
type DocumentHandler struct {
	*BaseHandler
	store artifact.Store
}

// NewDocumentHandler creates a new document artifact handler.
func NewDocumentHandler(base *BaseHandler, store artifact.Store) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, store: store}
}

// Save handles PUT /documents/:type/:year/:month/:number.
// Saving an existing key overwrites it (last write wins).
func (h *DocumentHandler) Save(c *gin.Context) {
	key, ok := h.parseKey(c)
	if !ok {
		return
	}

	var req dto.SaveArtifactRequest
	if !h.BindJSON(c, &req) {
		return
	}

	path, err := h.store.Save(c.Request.Context(), key, []byte(req.Content))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.SaveArtifactResponse{Path: path})
}

// Load handles GET /documents/:type/:year/:month/:number.
func (h *DocumentHandler) Load(c *gin.Context) {
	key, ok := h.parseKey(c)
	if !ok {
		return
	}

	content, err := h.store.Load(c.Request.Context(), key)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.LoadArtifactResponse{Content: string(content)})
}

// Delete handles DELETE /documents/:type/:year/:month/:number.
func (h *DocumentHandler) Delete(c *gin.Context) {
	key, ok := h.parseKey(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), key); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *DocumentHandler) parseKey(c *gin.Context) (artifact.Key, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid year").WithDetail("year", c.Param("year")))
		return artifact.Key{}, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid month").WithDetail("month", c.Param("month")))
		return artifact.Key{}, false
	}

	key := artifact.Key{
		DocumentType:  artifact.DocumentType(c.Param("type")),
		Year:          year,
		Month:         month,
		InvoiceNumber: c.Param("number"),
	}
	if err := key.Validate(); err != nil {
		h.Error(c, err)
		return artifact.Key{}, false
	}
	return key, true
}
