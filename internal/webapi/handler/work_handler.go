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

type WorkHandler struct {
	workService service.WorkService
}

func NewWorkHandler(workService service.WorkService) *WorkHandler {
	return &WorkHandler{workService: workService}
}

// RegisterRoutes registers work-related routes
func (h *WorkHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", middleware.Require("works.read"), h.List)
	rg.GET("/:work_id", middleware.Require("works.read"), h.Get)
	rg.POST("", middleware.Require("works.write"), h.Create)
	rg.PUT("/:work_id", middleware.Require("works.write"), h.Update)
	rg.DELETE("/:work_id", middleware.Require("works.write"), h.Delete)
}

// List returns a page of works in insertion order
// GET /api/works?limit=20&offset=0
func (h *WorkHandler) List(c *gin.Context) {
	limit, offset, ok := parseLimitOffset(c, 20, 100)
	if !ok {
		return
	}

	works, err := h.workService.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, works)
}

// Get returns a work with its computed rating aggregate and reading links
// GET /api/works/:work_id
func (h *WorkHandler) Get(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	work, err := h.workService.GetByID(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, work)
}

// Create adds a work to the catalog (admin only, enforced by the policy guard)
// POST /api/works
func (h *WorkHandler) Create(c *gin.Context) {
	var req dto.CreateWorkDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, work)
}

// Update applies a partial update to a work (admin only)
// PUT /api/works/:work_id
func (h *WorkHandler) Update(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	var req dto.UpdateWorkDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.Update(c.Request.Context(), workID, req)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, work)
}

// Delete removes a work and its dependent rows (admin only)
// DELETE /api/works/:work_id
func (h *WorkHandler) Delete(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	if err := h.workService.Delete(c.Request.Context(), workID); err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "work deleted successfully"})
}
