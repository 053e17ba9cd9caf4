package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/models"
)

// ExperienceHandler handles API endpoints for experiences.
type ExperienceHandler struct {
	svc    *core.ExperienceService
	logger *zap.Logger
}

func NewExperienceHandler(svc *core.ExperienceService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, logger: logger}
}

// List handles GET /experiences
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// Get handles GET /experiences/:id
func (h *ExperienceHandler) Get(c *gin.Context) {
	exp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if exp == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// Create handles POST /admin/experiences
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), models.Experience{
		Role:        req.Role,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		TechStack:   req.TechStack,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update handles PUT /admin/experiences/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req models.ExperienceUpdate
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

// Delete handles DELETE /admin/experiences/:id
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
