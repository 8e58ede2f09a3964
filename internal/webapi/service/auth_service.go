package service

import (
	"context"
	"errors"
	"time"

	"mangarate/internal/config"
	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload. Role travels in the token so the
// policy guard can decide without a user lookup per request.
type Claims struct {
	UserID int64  `json:"user_id"`
	OpenID string `json:"open_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	LoginUpsert(ctx context.Context, identity OIDCIdentity) (*models.User, error)
	IssueSession(user *models.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	Me(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authService struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	sessionTTL  time.Duration
	ownerOpenID string
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   cfg.JWTSecret,
		sessionTTL:  cfg.SessionTTL,
		ownerOpenID: cfg.OwnerOpenID,
	}
}

// LoginUpsert records a successful login: the user row is created or its
// profile fields refreshed, keyed on the provider's openId. The configured
// owner identity is promoted to admin; no other login ever changes a role.
func (s *authService) LoginUpsert(ctx context.Context, identity OIDCIdentity) (*models.User, error) {
	user := &models.User{
		OpenID:      identity.Subject,
		Name:        optional(identity.Name),
		Email:       optional(identity.Email),
		LoginMethod: optional(identity.Provider),
		Role:        models.RoleUser,
	}

	updateRole := false
	if s.ownerOpenID != "" && identity.Subject == s.ownerOpenID {
		user.Role = models.RoleAdmin
		updateRole = true
	}

	if err := s.userRepo.UpsertByOpenID(ctx, user, updateRole); err != nil {
		return nil, err
	}

	// Reload so the caller sees the persisted row (ID, role, timestamps)
	return s.userRepo.FindByOpenID(ctx, identity.Subject)
}

// IssueSession signs a session token for the user
func (s *authService) IssueSession(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		OpenID: user.OpenID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Me returns the caller's persisted user record
func (s *authService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
