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

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterWorkRoutes registers the per-work review routes under /works/:work_id
func (h *ReviewHandler) RegisterWorkRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/:work_id/reviews")
	{
		reviews.GET("", middleware.Require("reviews.read"), h.ListByWork)
		reviews.POST("", middleware.Require("reviews.write"), h.Create)
	}
}

// RegisterRoutes registers the top-level review routes
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", middleware.Require("reviews.write"), h.ListMine)
	rg.DELETE("/:review_id", middleware.Require("reviews.write"), h.Delete)
}

// ListByWork returns reviews for a work with pagination
// GET /api/works/:work_id/reviews?limit=10&offset=0
func (h *ReviewHandler) ListByWork(c *gin.Context) {
	workID, err := strconv.ParseInt(c.Param("work_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work ID"})
		return
	}

	limit, offset, ok := parseLimitOffset(c, 10, 50)
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetWorkReviews(c.Request.Context(), workID, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Create posts a review on a work
// POST /api/works/:work_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
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

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, workID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Delete removes a review (author or admin only)
// DELETE /api/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID, userID, middleware.CallerRole(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotReviewOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted successfully"})
}

// ListMine returns the caller's own reviews
// GET /api/reviews/me?limit=20&offset=0
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, offset, ok := parseLimitOffset(c, 20, 50)
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetUserReviews(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
