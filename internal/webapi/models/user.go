package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OpenID       string     `json:"open_id" gorm:"column:open_id;uniqueIndex;size:64;not null"`
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty" gorm:"size:320"`
	LoginMethod  *string    `json:"login_method,omitempty" gorm:"size:64"`
	Role         string     `json:"role" gorm:"default:'user';not null"` // "user" or "admin"
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	LastSignedIn time.Time  `json:"last_signed_in" gorm:"default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string {
	return "users"
}
