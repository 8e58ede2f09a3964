package service

import "errors"

// Sentinel errors surfaced to handlers, which map them onto HTTP statuses.
var (
	ErrWorkNotFound     = errors.New("work not found")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrLinkNotFound     = errors.New("reading link not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrAlreadyFavorite  = errors.New("work already in favorites")
	ErrNotReviewOwner   = errors.New("you don't have permission to delete this review")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")

	ErrGateRejected = errors.New("invalid admin password")
)
