package service

import (
	"context"
	"errors"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"gorm.io/gorm"
)

type ReadingLinkService interface {
	GetByWork(ctx context.Context, workID int64) ([]dto.ReadingLinkResponse, error)
	Create(ctx context.Context, workID int64, platform, url string) (*dto.ReadingLinkResponse, error)
	Delete(ctx context.Context, id int64) error
}

type readingLinkService struct {
	linkRepo repository.ReadingLinkRepository
	workRepo WorkFinder
}

func NewReadingLinkService(linkRepo repository.ReadingLinkRepository, workRepo WorkFinder) ReadingLinkService {
	return &readingLinkService{
		linkRepo: linkRepo,
		workRepo: workRepo,
	}
}

func (s *readingLinkService) GetByWork(ctx context.Context, workID int64) ([]dto.ReadingLinkResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	links, err := s.linkRepo.GetByWork(ctx, workID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReadingLinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, dto.FromModelToReadingLinkResponse(link))
	}
	return responses, nil
}

func (s *readingLinkService) Create(ctx context.Context, workID int64, platform, url string) (*dto.ReadingLinkResponse, error) {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	link := &models.ReadingLink{
		WorkID:   workID,
		Platform: platform,
		URL:      url,
	}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	resp := dto.FromModelToReadingLinkResponse(*link)
	return &resp, nil
}

func (s *readingLinkService) Delete(ctx context.Context, id int64) error {
	if err := s.linkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	return nil
}
