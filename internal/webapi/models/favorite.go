package models

import "time"

type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_work"`
	WorkID    int64     `json:"work_id" gorm:"not null;uniqueIndex:idx_favorites_user_work;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Work *Work `json:"work,omitempty" gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;"`
}

func (Favorite) TableName() string {
	return "favorites"
}
