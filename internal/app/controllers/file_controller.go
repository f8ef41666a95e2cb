package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
	"github.com/campusconnect/placement-api/internal/pkg/filestorage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FileController streams stored uploads from any storage backend
type FileController struct {
	storage   filestorage.FileStorage
	urlPrefix string
	logger    zerolog.Logger
}

// NewFileController creates a new FileController. urlPrefix is the reference
// prefix stored files carry, e.g. /uploads.
func NewFileController(storage filestorage.FileStorage, urlPrefix string, logger zerolog.Logger) *FileController {
	return &FileController{
		storage:   storage,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		logger:    logger,
	}
}

// Serve writes the file named by the filepath wildcard
// @Summary Download an uploaded file
// @Tags files
// @Produce octet-stream
// @Param filepath path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /uploads/{filepath} [get]
func (c *FileController) Serve(ctx *gin.Context) {
	ref := c.urlPrefix + "/" + strings.TrimPrefix(ctx.Param("filepath"), "/")

	body, contentType, err := c.storage.Open(ctx.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, filestorage.ErrNotFound) || errors.Is(err, filestorage.ErrNotManaged) {
			middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("File not found"))
			return
		}
		c.logger.Error().Err(err).Str("path", ref).Msg("Failed to open stored file")
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
