package repository

import (
	"context"
	"fmt"

	"mangarate/internal/webapi/models"

	"gorm.io/gorm"
)

type WorkRepo struct {
	db *gorm.DB
}

func NewWorkRepo(db *gorm.DB) *WorkRepo {
	return &WorkRepo{db: db}
}

// GetAll returns a page of works in insertion order.
func (r *WorkRepo) GetAll(ctx context.Context, limit, offset int) ([]models.Work, error) {
	var list []models.Work
	if err := r.db.WithContext(ctx).
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return list, nil
}

func (r *WorkRepo) GetByID(ctx context.Context, id int64) (*models.Work, error) {
	var w models.Work
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkRepo) Create(ctx context.Context, w *models.Work) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("create work: %w", err)
	}
	// GORM populates w.ID and w.CreatedAt
	return nil
}

func (r *WorkRepo) Update(ctx context.Context, id int64, w *models.Work) error {
	// ensure ID set for Save
	w.ID = id
	if err := r.db.WithContext(ctx).Save(w).Error; err != nil {
		return fmt.Errorf("update work: %w", err)
	}
	return nil
}

func (r *WorkRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Work{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete work: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
