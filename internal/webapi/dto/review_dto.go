package dto

import (
	"time"

	"mangarate/internal/webapi/models"
)

// CreateReviewDTO for posting a review on a work
type CreateReviewDTO struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID        int64     `json:"id"`
	WorkID    int64     `json:"work_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:        review.ID,
		WorkID:    review.WorkID,
		Content:   review.Content,
		Helpful:   review.Helpful,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
	if review.User.Name != nil {
		resp.Author = *review.User.Name
	}
	return resp
}

// PaginatedReviewResponse for returning paginated reviews
type PaginatedReviewResponse struct {
	Data   []ReviewResponse `json:"data"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
