package dto

import (
	"time"

	"mangarate/internal/webapi/models"
)

// CreateWorkDTO used for POST /api/works
type CreateWorkDTO struct {
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Type          string  `json:"type" binding:"required,oneof=manga manhwa"`
	Genre         *string `json:"genre,omitempty"` // comma-separated genre tags
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=ongoing completed hiatus"`
	Chapters      *int    `json:"chapters,omitempty" binding:"omitempty,min=0"`
	Author        *string `json:"author,omitempty"`
}

// UpdateWorkDTO used for PUT /api/works/:work_id (partial updates allowed)
type UpdateWorkDTO struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=manga manhwa"`
	Genre         *string `json:"genre,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=ongoing completed hiatus"`
	Chapters      *int    `json:"chapters,omitempty" binding:"omitempty,min=0"`
	Author        *string `json:"author,omitempty"`
}

// WorkResponse DTO for list responses
type WorkResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	Type          string    `json:"type"`
	Genre         *string   `json:"genre,omitempty"`
	Status        string    `json:"status"`
	Chapters      int       `json:"chapters"`
	Author        *string   `json:"author,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WorkDetailResponse adds the computed rating aggregate and reading links
// for GET /api/works/:work_id. AverageRating is a fixed one-decimal string
// ("0" when unrated).
type WorkDetailResponse struct {
	WorkResponse
	AverageRating string                `json:"average_rating"`
	TotalRatings  int64                 `json:"total_ratings"`
	ReadingLinks  []ReadingLinkResponse `json:"reading_links"`
}

// WorkListResponse for GET /api/works
type WorkListResponse struct {
	Data   []WorkResponse `json:"data"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// Converters
func (d CreateWorkDTO) ToModel() models.Work {
	w := models.Work{
		Title:         d.Title,
		Description:   d.Description,
		CoverImageURL: d.CoverImageURL,
		Type:          d.Type,
		Genre:         d.Genre,
		Status:        models.WorkStatusOngoing,
		Author:        d.Author,
	}
	if d.Status != nil {
		w.Status = *d.Status
	}
	if d.Chapters != nil {
		w.Chapters = *d.Chapters
	}
	return w
}

func (d UpdateWorkDTO) ApplyTo(w *models.Work) {
	if d.Title != nil {
		w.Title = *d.Title
	}
	if d.Description != nil {
		w.Description = d.Description
	}
	if d.CoverImageURL != nil {
		w.CoverImageURL = d.CoverImageURL
	}
	if d.Type != nil {
		w.Type = *d.Type
	}
	if d.Genre != nil {
		w.Genre = d.Genre
	}
	if d.Status != nil {
		w.Status = *d.Status
	}
	if d.Chapters != nil {
		w.Chapters = *d.Chapters
	}
	if d.Author != nil {
		w.Author = d.Author
	}
}

func FromModelToWorkResponse(w models.Work) WorkResponse {
	return WorkResponse{
		ID:            w.ID,
		Title:         w.Title,
		Description:   w.Description,
		CoverImageURL: w.CoverImageURL,
		Type:          w.Type,
		Genre:         w.Genre,
		Status:        w.Status,
		Chapters:      w.Chapters,
		Author:        w.Author,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
