package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
)

// SeedHandler triggers the one-shot seed import.
type SeedHandler struct {
	svc    *core.SeedService
	logger *zap.Logger
}

func NewSeedHandler(svc *core.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{svc: svc, logger: logger}
}

// Import handles POST /admin/seed. Repeated runs duplicate entries; the
// confirmation lives in the admin UI, not here.
func (h *SeedHandler) Import(c *gin.Context) {
	result, err := h.svc.Import(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
