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

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating-related routes under /works/:work_id
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/:work_id/ratings")
	{
		ratings.GET("", middleware.Require("ratings.read"), h.List)
		ratings.GET("/average", middleware.Require("ratings.read"), h.GetAverage)
		ratings.POST("", middleware.Require("ratings.write"), h.Rate)
		ratings.GET("/me", middleware.Require("ratings.write"), h.GetUserRating)
	}
}

// Rate records or overwrites the caller's 1-5 star score for a work
// POST /api/works/:work_id/ratings
func (h *RatingHandler) Rate(c *gin.Context) {
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

	var req dto.RateWorkDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ratingService.RateWork(c.Request.Context(), userID, workID, req.Score); err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating saved"})
}

// GetUserRating returns the caller's rating for a work
// GET /api/works/:work_id/ratings/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
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

	rating, err := h.ratingService.GetUserRating(c.Request.Context(), userID, workID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// List returns all ratings for a work, optionally filtered to an exact score
// GET /api/works/:work_id/ratings?score=5
func (h *RatingHandler) List(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	var ratings []dto.RatingResponse
	if scoreParam := c.Query("score"); scoreParam != "" {
		score, err := strconv.Atoi(scoreParam)
		if err != nil || score < 1 || score > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 1 and 5"})
			return
		}
		ratings, err = h.ratingService.GetWorkRatingsByScore(c.Request.Context(), workID, score)
		if err != nil {
			h.listError(c, err)
			return
		}
	} else {
		ratings, err = h.ratingService.GetWorkRatings(c.Request.Context(), workID)
		if err != nil {
			h.listError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": ratings})
}

// GetAverage returns the read-time rating aggregate for a work
// GET /api/works/:work_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	avg, err := h.ratingService.GetWorkAverage(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, avg)
}

func (h *RatingHandler) listError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrWorkNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
