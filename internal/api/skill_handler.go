package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/models"
)

// SkillHandler handles API endpoints for skills.
type SkillHandler struct {
	svc    *core.SkillService
	logger *zap.Logger
}

func NewSkillHandler(svc *core.SkillService, logger *zap.Logger) *SkillHandler {
	return &SkillHandler{svc: svc, logger: logger}
}

// List handles GET /skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// Get handles GET /skills/:id
func (h *SkillHandler) Get(c *gin.Context) {
	skill, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if skill == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// Create handles POST /admin/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), models.Skill{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update handles PUT /admin/skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	var req models.SkillUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /admin/skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
