package dto

import (
	"time"

	"mangarate/internal/webapi/models"
)

// RateWorkDTO for creating or updating a rating
type RateWorkDTO struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// RatingResponse for returning rating information (for list view - without IDs)
type RatingResponse struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	resp := &RatingResponse{
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
	if rating.User.Name != nil {
		resp.Username = *rating.User.Name
	}
	return resp
}

// UserRatingResponse for returning the caller's own rating
type UserRatingResponse struct {
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AverageRatingResponse carries the read-time aggregate for a work
type AverageRatingResponse struct {
	AverageRating string `json:"average_rating"`
	TotalRatings  int64  `json:"total_ratings"`
}
