package service

import (
	"context"
	"errors"
	"strconv"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	RateWork(ctx context.Context, userID, workID int64, score int) error
	GetUserRating(ctx context.Context, userID, workID int64) (*dto.UserRatingResponse, error)
	GetWorkRatings(ctx context.Context, workID int64) ([]dto.RatingResponse, error)
	GetWorkRatingsByScore(ctx context.Context, workID int64, score int) ([]dto.RatingResponse, error)
	GetWorkAverage(ctx context.Context, workID int64) (*dto.AverageRatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	workRepo   WorkFinder
}

func NewRatingService(ratingRepo repository.RatingRepository, workRepo WorkFinder) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		workRepo:   workRepo,
	}
}

// FormatAverage renders a rating aggregate the way the API exposes it:
// "0" for an unrated work, otherwise the mean with exactly one decimal digit.
func FormatAverage(avg float64, count int64) string {
	if count == 0 {
		return "0"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// RateWork records or overwrites the user's score for a work. The write is a
// single upsert, so the one-rating-per-(user, work) invariant holds even under
// concurrent calls.
func (s *ratingService) RateWork(ctx context.Context, userID, workID int64, score int) error {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}

	rating := &models.Rating{
		UserID: userID,
		WorkID: workID,
		Score:  score,
	}
	return s.ratingRepo.Upsert(ctx, rating)
}

// GetUserRating retrieves the caller's rating for a specific work
func (s *ratingService) GetUserRating(ctx context.Context, userID, workID int64) (*dto.UserRatingResponse, error) {
	rating, err := s.ratingRepo.GetByUserAndWork(ctx, userID, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	return &dto.UserRatingResponse{
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}, nil
}

// GetWorkRatings retrieves all ratings for a work, newest first
func (s *ratingService) GetWorkRatings(ctx context.Context, workID int64) ([]dto.RatingResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByWork(ctx, workID)
	if err != nil {
		return nil, err
	}

	return toRatingResponses(ratings), nil
}

// GetWorkRatingsByScore retrieves the ratings for a work with an exact score
func (s *ratingService) GetWorkRatingsByScore(ctx context.Context, workID int64, score int) ([]dto.RatingResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByWorkAndScore(ctx, workID, score)
	if err != nil {
		return nil, err
	}

	return toRatingResponses(ratings), nil
}

// GetWorkAverage derives the aggregate from the live rating rows. Nothing is
// written back to the denormalized columns on works.
func (s *ratingService) GetWorkAverage(ctx context.Context, workID int64) (*dto.AverageRatingResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.CalculateAverage(ctx, workID)
	if err != nil {
		return nil, err
	}
	count, err := s.ratingRepo.CountByWork(ctx, workID)
	if err != nil {
		return nil, err
	}

	return &dto.AverageRatingResponse{
		AverageRating: FormatAverage(avg, count),
		TotalRatings:  count,
	}, nil
}

func toRatingResponses(ratings []models.Rating) []dto.RatingResponse {
	responses := make([]dto.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&rating))
	}
	return responses
}
