package repository

import (
	"context"
	"time"

	"mangarate/internal/webapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	UpsertByOpenID(ctx context.Context, user *models.User, updateRole bool) error
	FindByOpenID(ctx context.Context, openID string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// UpsertByOpenID inserts the user or, when a row with the same open_id exists,
// refreshes its profile fields in a single atomic statement. The role column is
// only touched when updateRole is set, so an explicitly granted admin role is
// not demoted by a later plain login.
func (r *userRepository) UpsertByOpenID(ctx context.Context, user *models.User, updateRole bool) error {
	columns := []string{"name", "email", "login_method", "last_signed_in", "updated_at"}
	if updateRole {
		columns = append(columns, "role")
	}
	user.LastSignedIn = time.Now()

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(user).Error
}

func (r *userRepository) FindByOpenID(ctx context.Context, openID string) (*models.User, error) {
	var user models.User
	// return nil on error to avoid handing GORM a zero-value struct it would
	// treat as a found record
	if err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
