package dto

import (
	"time"

	"mangarate/internal/webapi/models"
)

// FavoriteResponse for a single favorite joined with its work
type FavoriteResponse struct {
	ID      int64         `json:"id"`
	WorkID  int64         `json:"work_id"`
	AddedAt time.Time     `json:"added_at"`
	Work    *WorkResponse `json:"work,omitempty"`
}

// FavoriteListResponse for GET /api/favorites
type FavoriteListResponse struct {
	Data   []FavoriteResponse `json:"data"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// IsFavoriteResponse for GET /api/favorites/:work_id
type IsFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// FromModelToFavoriteResponse converts a Favorite model to its DTO
func FromModelToFavoriteResponse(fav models.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ID:      fav.ID,
		WorkID:  fav.WorkID,
		AddedAt: fav.CreatedAt,
	}
	if fav.Work != nil {
		work := FromModelToWorkResponse(*fav.Work)
		resp.Work = &work
	}
	return resp
}
