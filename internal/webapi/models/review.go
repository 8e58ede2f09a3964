package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	WorkID    int64     `json:"work_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Helpful   int       `json:"helpful" gorm:"default:0"` // count of helpful votes
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Work Work `json:"-" gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
