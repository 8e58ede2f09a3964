package repository

import (
	"context"

	"mangarate/internal/webapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByUserAndWork(ctx context.Context, userID, workID int64) (*models.Rating, error)
	GetByWork(ctx context.Context, workID int64) ([]models.Rating, error)
	GetByWorkAndScore(ctx context.Context, workID int64, score int) ([]models.Rating, error)
	CalculateAverage(ctx context.Context, workID int64) (float64, error)
	CountByWork(ctx context.Context, workID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the user's score for a work as a single INSERT .. ON CONFLICT
// statement against the (user_id, work_id) unique index, so two concurrent
// calls for the same pair can never produce two rows.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "work_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

// GetByUserAndWork retrieves a user's rating for a specific work
func (r *ratingRepository) GetByUserAndWork(ctx context.Context, userID, workID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND work_id = ?", userID, workID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByWork retrieves all ratings for a work, newest first
func (r *ratingRepository) GetByWork(ctx context.Context, workID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByWorkAndScore retrieves the ratings for a work carrying an exact score
func (r *ratingRepository) GetByWorkAndScore(ctx context.Context, workID int64, score int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("work_id = ? AND score = ?", workID, score).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CalculateAverage computes the arithmetic mean score for a work
func (r *ratingRepository) CalculateAverage(ctx context.Context, workID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("work_id = ?", workID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountByWork counts the total number of ratings for a work
func (r *ratingRepository) CountByWork(ctx context.Context, workID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("work_id = ?", workID).
		Count(&count).Error
	return count, err
}
