package models

import "time"

type ReadingLink struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkID    int64     `json:"work_id" gorm:"not null;index"`
	Platform  string    `json:"platform" gorm:"size:100;not null"` // e.g. "MangaDex", "Webtoon", "Tappytoon"
	URL       string    `json:"url" gorm:"size:512;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Work Work `json:"-" gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;"`
}

func (ReadingLink) TableName() string {
	return "reading_links"
}
