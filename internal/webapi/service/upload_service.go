package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"mangarate/internal/storage"
	"mangarate/internal/webapi/dto"

	"github.com/google/uuid"
)

// MaxUploadSize is the upload size cap in bytes (5 MiB).
const MaxUploadSize = 5 * 1024 * 1024

// uploadKeyPrefix is the logical prefix every stored cover image lives under.
const uploadKeyPrefix = "manga-covers"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Validation errors surfaced as BadRequest responses.
var (
	ErrFileTooLarge    = errors.New("file size exceeds 5MB limit")
	ErrUnsupportedType = errors.New("invalid file type, only JPEG, PNG, WebP and GIF are allowed")
	ErrFileNameEmpty   = errors.New("file name is required")
)

type UploadService interface {
	UploadImage(ctx context.Context, data []byte, fileName, mimeType string) (*dto.UploadResponse, error)
}

type uploadService struct {
	store storage.Store
}

func NewUploadService(store storage.Store) UploadService {
	return &uploadService{store: store}
}

// ValidateImage applies the file-shape checks in order: size, type, name.
// The first failing check wins; nothing touches the object store on failure.
func ValidateImage(size int, mimeType, fileName string) error {
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	if !allowedImageTypes[mimeType] {
		return ErrUnsupportedType
	}
	if fileName == "" {
		return ErrFileNameEmpty
	}
	return nil
}

// UploadImage validates the file and hands the bytes to the object store
// under a collision-resistant key that keeps the original extension.
func (s *uploadService) UploadImage(ctx context.Context, data []byte, fileName, mimeType string) (*dto.UploadResponse, error) {
	if err := ValidateImage(len(data), mimeType, fileName); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "jpg"
	}
	key := uploadKeyPrefix + "/" + uuid.New().String() + "." + ext

	url, err := s.store.Put(ctx, key, data, mimeType)
	if err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		Success: true,
		URL:     url,
		Key:     key,
	}, nil
}
