package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/dto"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	"github.com/alipouryousefi/task-manager-back/pkg/apierrors"
)

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// UploadHandler stores multipart image uploads under the configured
// directory and returns the public URL for the stored file.
type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	lang := middleware.GetLang(c)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgNoFileUploaded, lang),
		)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFileType, lang),
		)
		return
	}

	// Random name; the original filename never reaches the filesystem.
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		zap.L().Error("failed to store uploaded file", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpload, lang),
		)
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	c.JSON(http.StatusOK, dto.UploadImageResponse{
		ImageURL: fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, name),
	})
}
