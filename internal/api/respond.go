package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/core"
)

// respondError maps service errors onto HTTP responses. Anything not
// recognized as a validation failure surfaces once as a generic failure;
// there is no retry at this layer.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, core.ErrInvalidCategory) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	logger.Error("operation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "operation failed"})
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload", Details: err.Error()})
}

// readUpload pulls the "file" part out of a multipart form.
func readUpload(c *gin.Context) ([]byte, *multipart.FileHeader, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, header, nil
}
