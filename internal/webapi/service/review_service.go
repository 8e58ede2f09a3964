package service

import (
	"context"
	"errors"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID, workID int64, content string) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, callerID int64, callerRole string) error
	GetWorkReviews(ctx context.Context, workID int64, limit, offset int) (*dto.PaginatedReviewResponse, error)
	GetUserReviews(ctx context.Context, userID int64, limit, offset int) (*dto.PaginatedReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	workRepo   WorkFinder
}

func NewReviewService(reviewRepo repository.ReviewRepository, workRepo WorkFinder) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		workRepo:   workRepo,
	}
}

// CreateReview attaches a review to a work. Content length is validated at
// the handler boundary; a user may review the same work more than once.
func (s *reviewService) CreateReview(ctx context.Context, userID, workID int64, content string) (*dto.ReviewResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		WorkID:  workID,
		Content: content,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Reload with user data
	review, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// DeleteReview removes a review. Only the review's author or an admin may
// delete it.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID, callerID int64, callerRole string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != callerID && callerRole != models.RoleAdmin {
		return ErrNotReviewOwner
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

// GetWorkReviews retrieves reviews for a work with pagination
func (s *reviewService) GetWorkReviews(ctx context.Context, workID int64, limit, offset int) (*dto.PaginatedReviewResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByWork(ctx, workID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedReviewResponse{
		Data:   toReviewResponses(reviews),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetUserReviews retrieves all reviews written by a user with pagination
func (s *reviewService) GetUserReviews(ctx context.Context, userID int64, limit, offset int) (*dto.PaginatedReviewResponse, error) {
	reviews, total, err := s.reviewRepo.GetByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedReviewResponse{
		Data:   toReviewResponses(reviews),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func toReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&review))
	}
	return responses
}
