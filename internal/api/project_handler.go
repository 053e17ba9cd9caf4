package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/models"
)

// ProjectHandler handles API endpoints for projects.
type ProjectHandler struct {
	svc    *core.ProjectService
	logger *zap.Logger
}

func NewProjectHandler(svc *core.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, logger: logger}
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListFeatured handles GET /projects/featured
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.svc.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if p == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), models.Project{
		Title:       req.Title,
		Description: req.Description,
		Impact:      req.Impact,
		TechStack:   req.TechStack,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update handles PUT /admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.ProjectUpdate
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

// Delete handles DELETE /admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /admin/projects/:id/image. The project must
// already exist; the image is stored under the project's real ID.
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	data, header, err := readUpload(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	url, err := h.svc.SetImage(
		c.Request.Context(),
		c.Param("id"),
		header.Filename,
		data,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if url == "" {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{URL: url})
}
