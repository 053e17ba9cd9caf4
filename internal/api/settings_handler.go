package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/models"
)

// SettingsHandler handles the settings singleton and the CV upload.
type SettingsHandler struct {
	svc    *core.SettingsService
	logger *zap.Logger
}

func NewSettingsHandler(svc *core.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, logger: logger}
}

// Get handles GET /settings. Before the first write the singleton does not
// exist; the public site renders defaults, so this returns an empty document
// rather than 404.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if settings == nil {
		settings = &models.Settings{}
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /admin/settings with a partial document.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.Update(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadCV handles POST /admin/settings/cv.
func (h *SettingsHandler) UploadCV(c *gin.Context) {
	data, header, err := readUpload(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	url, err := h.svc.UploadCV(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{URL: url})
}
