package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/models"
)

// MessageHandler handles the public contact endpoint and the admin-side
// message views.
type MessageHandler struct {
	svc    *core.MessageService
	logger *zap.Logger
}

func NewMessageHandler(svc *core.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, logger: logger}
}

// Contact handles POST /contact from the public site.
func (h *MessageHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// List handles GET /admin/messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Get handles GET /admin/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if m == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /admin/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
