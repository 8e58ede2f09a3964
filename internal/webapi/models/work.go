package models

import "time"

const (
	WorkTypeManga  = "manga"
	WorkTypeManhwa = "manhwa"

	WorkStatusOngoing   = "ongoing"
	WorkStatusCompleted = "completed"
	WorkStatusHiatus    = "hiatus"
)

type Work struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string  `json:"title" gorm:"size:255;not null"`
	Description   *string `json:"description,omitempty" gorm:"type:text"`
	CoverImageURL *string `json:"cover_image_url,omitempty" gorm:"size:512"`
	Type          string  `json:"type" gorm:"size:16;not null"` // "manga" or "manhwa"
	Genre         *string `json:"genre,omitempty" gorm:"size:255"` // comma-separated genre tags
	Status        string  `json:"status" gorm:"size:16;default:'ongoing';not null"`
	Chapters      int     `json:"chapters" gorm:"default:0"`
	Author        *string `json:"author,omitempty" gorm:"size:255"`

	// Denormalized aggregate columns carried over from the legacy schema.
	// Reads always recompute from the ratings table and never trust these.
	AverageRating string `json:"-" gorm:"size:10;default:'0'"`
	TotalRatings  int    `json:"-" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Ratings      []Rating      `json:"-" gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;"`
	Reviews      []Review      `json:"-" gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;"`
	ReadingLinks []ReadingLink `json:"-" gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;"`
}

func (Work) TableName() string {
	return "works"
}
