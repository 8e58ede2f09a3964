package service

import (
	"context"
	"errors"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"gorm.io/gorm"
)

// WorkFinder is the slice of the work repository the other services need to
// check that a work exists before touching its dependents.
type WorkFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Work, error)
}

type WorkService interface {
	List(ctx context.Context, limit, offset int) (*dto.WorkListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.WorkDetailResponse, error)
	Create(ctx context.Context, req dto.CreateWorkDTO) (*dto.WorkResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateWorkDTO) (*dto.WorkResponse, error)
	Delete(ctx context.Context, id int64) error
}

type workService struct {
	workRepo   *repository.WorkRepo
	ratingRepo repository.RatingRepository
	linkRepo   repository.ReadingLinkRepository
}

func NewWorkService(
	workRepo *repository.WorkRepo,
	ratingRepo repository.RatingRepository,
	linkRepo repository.ReadingLinkRepository,
) WorkService {
	return &workService{
		workRepo:   workRepo,
		ratingRepo: ratingRepo,
		linkRepo:   linkRepo,
	}
}

// List returns a page of works in insertion order
func (s *workService) List(ctx context.Context, limit, offset int) (*dto.WorkListResponse, error) {
	works, err := s.workRepo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WorkResponse, 0, len(works))
	for _, w := range works {
		responses = append(responses, dto.FromModelToWorkResponse(w))
	}

	return &dto.WorkListResponse{
		Data:   responses,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetByID returns the work together with its computed rating aggregate and
// reading links. The aggregate is always derived from the rating rows; the
// denormalized columns on the works table are ignored.
func (s *workService) GetByID(ctx context.Context, id int64) (*dto.WorkDetailResponse, error) {
	work, err := s.workRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	avg, err := s.ratingRepo.CalculateAverage(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.ratingRepo.CountByWork(ctx, id)
	if err != nil {
		return nil, err
	}

	links, err := s.linkRepo.GetByWork(ctx, id)
	if err != nil {
		return nil, err
	}
	linkResponses := make([]dto.ReadingLinkResponse, 0, len(links))
	for _, link := range links {
		linkResponses = append(linkResponses, dto.FromModelToReadingLinkResponse(link))
	}

	return &dto.WorkDetailResponse{
		WorkResponse:  dto.FromModelToWorkResponse(*work),
		AverageRating: FormatAverage(avg, count),
		TotalRatings:  count,
		ReadingLinks:  linkResponses,
	}, nil
}

func (s *workService) Create(ctx context.Context, req dto.CreateWorkDTO) (*dto.WorkResponse, error) {
	work := req.ToModel()
	if err := s.workRepo.Create(ctx, &work); err != nil {
		return nil, err
	}

	resp := dto.FromModelToWorkResponse(work)
	return &resp, nil
}

func (s *workService) Update(ctx context.Context, id int64, req dto.UpdateWorkDTO) (*dto.WorkResponse, error) {
	work, err := s.workRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	req.ApplyTo(work)
	if err := s.workRepo.Update(ctx, id, work); err != nil {
		return nil, err
	}

	resp := dto.FromModelToWorkResponse(*work)
	return &resp, nil
}

// Delete removes the work; rating, review, link and favorite rows follow via
// FK cascade.
func (s *workService) Delete(ctx context.Context, id int64) error {
	if err := s.workRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}
	return nil
}
