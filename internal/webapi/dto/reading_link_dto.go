package dto

import (
	"time"

	"mangarate/internal/webapi/models"
)

// CreateReadingLinkDTO for attaching a reading link to a work
type CreateReadingLinkDTO struct {
	Platform string `json:"platform" binding:"required,max=100"`
	URL      string `json:"url" binding:"required,url"`
}

// ReadingLinkResponse for returning reading link information
type ReadingLinkResponse struct {
	ID        int64     `json:"id"`
	WorkID    int64     `json:"work_id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToReadingLinkResponse converts a ReadingLink model to its DTO
func FromModelToReadingLinkResponse(link models.ReadingLink) ReadingLinkResponse {
	return ReadingLinkResponse{
		ID:        link.ID,
		WorkID:    link.WorkID,
		Platform:  link.Platform,
		URL:       link.URL,
		CreatedAt: link.CreatedAt,
	}
}
