package handler

import (
	"encoding/base64"
	"errors"
	"net/http"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/middleware"
	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/image", middleware.Require("upload.write"), h.UploadImage)
}

// UploadImage accepts a base64-encoded cover image and stores it
// POST /api/upload/image
func (h *UploadHandler) UploadImage(c *gin.Context) {
	var req dto.UploadImageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file data is not valid base64"})
		return
	}

	resp, err := h.uploadService.UploadImage(c.Request.Context(), data, req.FileName, req.MimeType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileTooLarge),
			errors.Is(err, service.ErrUnsupportedType),
			errors.Is(err, service.ErrFileNameEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
