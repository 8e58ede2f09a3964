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

type FavoriteHandler struct {
	favService service.FavoriteService
}

func NewFavoriteHandler(favService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favService: favService}
}

// RegisterRoutes registers favorite-related routes
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", middleware.Require("favorites.read"), h.List)
	rg.GET("/:work_id", middleware.Require("favorites.read"), h.IsFavorite)
	rg.POST("/:work_id", middleware.Require("favorites.write"), h.Add)
	rg.DELETE("/:work_id", middleware.Require("favorites.write"), h.Remove)
}

// Add bookmarks a work for the caller
// POST /api/favorites/:work_id
func (h *FavoriteHandler) Add(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.favService.Add(c.Request.Context(), userID, workID); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyFavorite):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "work added to favorites"})
}

// Remove drops a work from the caller's favorites
// DELETE /api/favorites/:work_id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.favService.Remove(c.Request.Context(), userID, workID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "work removed from favorites"})
}

// List returns the caller's favorites joined with their works
// GET /api/favorites?limit=20&offset=0
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, offset, ok := parseLimitOffset(c, 20, 100)
	if !ok {
		return
	}

	favorites, err := h.favService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// IsFavorite reports whether the caller has favorited the work
// GET /api/favorites/:work_id
func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	isFav, err := h.favService.IsFavorite(c.Request.Context(), userID, workID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.IsFavoriteResponse{IsFavorite: isFav})
}
