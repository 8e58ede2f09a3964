package repository

import (
	"context"

	"mangarate/internal/webapi/models"

	"gorm.io/gorm"
)

type ReadingLinkRepository interface {
	GetByWork(ctx context.Context, workID int64) ([]models.ReadingLink, error)
	Create(ctx context.Context, link *models.ReadingLink) error
	Delete(ctx context.Context, id int64) error
}

type readingLinkRepository struct {
	db *gorm.DB
}

func NewReadingLinkRepository(db *gorm.DB) ReadingLinkRepository {
	return &readingLinkRepository{db: db}
}

func (r *readingLinkRepository) GetByWork(ctx context.Context, workID int64) ([]models.ReadingLink, error) {
	var links []models.ReadingLink
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *readingLinkRepository) Create(ctx context.Context, link *models.ReadingLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *readingLinkRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ReadingLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
