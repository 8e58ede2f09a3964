package service

import (
	"context"
	"errors"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"gorm.io/gorm"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, workID int64) error
	Remove(ctx context.Context, userID, workID int64) error
	List(ctx context.Context, userID int64, limit, offset int) (*dto.FavoriteListResponse, error)
	IsFavorite(ctx context.Context, userID, workID int64) (bool, error)
}

type favoriteService struct {
	favRepo  repository.FavoriteRepository
	workRepo WorkFinder
}

func NewFavoriteService(favRepo repository.FavoriteRepository, workRepo WorkFinder) FavoriteService {
	return &favoriteService{
		favRepo:  favRepo,
		workRepo: workRepo,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID, workID int64) error {
	if _, err := s.workRepo.GetByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}

	fav := &models.Favorite{
		UserID: userID,
		WorkID: workID,
	}
	if err := s.favRepo.Create(ctx, fav); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, workID int64) error {
	if err := s.favRepo.Delete(ctx, userID, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

func (s *favoriteService) List(ctx context.Context, userID int64, limit, offset int) (*dto.FavoriteListResponse, error) {
	favs, total, err := s.favRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FavoriteResponse, 0, len(favs))
	for _, fav := range favs {
		responses = append(responses, dto.FromModelToFavoriteResponse(fav))
	}

	return &dto.FavoriteListResponse{
		Data:   responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, workID int64) (bool, error) {
	return s.favRepo.Exists(ctx, userID, workID)
}
