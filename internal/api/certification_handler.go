package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/models"
)

// CertificationHandler handles API endpoints for certifications.
type CertificationHandler struct {
	svc    *core.CertificationService
	logger *zap.Logger
}

func NewCertificationHandler(svc *core.CertificationService, logger *zap.Logger) *CertificationHandler {
	return &CertificationHandler{svc: svc, logger: logger}
}

// List handles GET /certifications
func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

// Get handles GET /certifications/:id
func (h *CertificationHandler) Get(c *gin.Context) {
	cert, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if cert == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// Create handles POST /admin/certifications
func (h *CertificationHandler) Create(c *gin.Context) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), models.Certification{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update handles PUT /admin/certifications/:id
func (h *CertificationHandler) Update(c *gin.Context) {
	var req models.CertificationUpdate
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

// Delete handles DELETE /admin/certifications/:id
func (h *CertificationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
