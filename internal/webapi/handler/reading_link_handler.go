package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/middleware"
	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
)

type ReadingLinkHandler struct {
	linkService service.ReadingLinkService
}

func NewReadingLinkHandler(linkService service.ReadingLinkService) *ReadingLinkHandler {
	return &ReadingLinkHandler{linkService: linkService}
}

// RegisterWorkRoutes registers the per-work link routes under /works/:work_id
func (h *ReadingLinkHandler) RegisterWorkRoutes(rg *gin.RouterGroup) {
	links := rg.Group("/:work_id/reading-links")
	{
		links.GET("", middleware.Require("readingLinks.read"), h.ListByWork)
		links.POST("", middleware.Require("readingLinks.write"), h.Create)
	}
}

// RegisterRoutes registers the top-level link routes
func (h *ReadingLinkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/:link_id", middleware.Require("readingLinks.write"), h.Delete)
}

// ListByWork returns the reading links for a work
// GET /api/works/:work_id/reading-links
func (h *ReadingLinkHandler) ListByWork(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	links, err := h.linkService.GetByWork(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": links})
}

// Create attaches a reading link to a work (admin only)
// POST /api/works/:work_id/reading-links
func (h *ReadingLinkHandler) Create(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	var req dto.CreateReadingLinkDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.linkService.Create(c.Request.Context(), workID, req.Platform, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, link)
}

// Delete removes a reading link (admin only)
// DELETE /api/reading-links/:link_id
func (h *ReadingLinkHandler) Delete(c *gin.Context) {
	linkID, err := strconv.ParseInt(c.Param("link_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link ID"})
		return
	}

	if err := h.linkService.Delete(c.Request.Context(), linkID); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reading link deleted successfully"})
}
