package repository

import (
	"context"
	"errors"

	"mangarate/internal/webapi/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey reports a unique-constraint violation surfaced by Postgres.
var ErrDuplicateKey = errors.New("duplicate key")

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

type FavoriteRepository interface {
	Create(ctx context.Context, fav *models.Favorite) error
	Delete(ctx context.Context, userID, workID int64) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Favorite, int64, error)
	Exists(ctx context.Context, userID, workID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, fav *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, workID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND work_id = ?", userID, workID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser returns the user's favorites joined with their work rows,
// newest favorite first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Favorite, int64, error) {
	var favs []models.Favorite
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Work").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&favs).Error
	if err != nil {
		return nil, 0, err
	}

	return favs, total, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, workID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND work_id = ?", userID, workID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
