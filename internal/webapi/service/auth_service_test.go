package service_test

import (
	"context"
	"testing"
	"time"

	"mangarate/internal/config"
	"mangarate/internal/webapi/models"
	"mangarate/internal/webapi/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertByOpenID(ctx context.Context, user *models.User, updateRole bool) error {
	args := m.Called(ctx, user, updateRole)
	return args.Error(0)
}

func (m *MockUserRepository) FindByOpenID(ctx context.Context, openID string) (*models.User, error) {
	args := m.Called(ctx, openID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func testConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:   "0123456789abcdef0123456789abcdef",
		SessionTTL:  ttl,
		OwnerOpenID: "owner-open-id",
	}
}

func TestAuthService_Sessions(t *testing.T) {
	repo := new(MockUserRepository)
	svc := service.NewAuthService(repo, testConfig(time.Hour))

	user := &models.User{ID: 42, OpenID: "oidc|abc", Role: models.RoleUser}

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := svc.IssueSession(user)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "oidc|abc", claims.OpenID)
		assert.Equal(t, models.RoleUser, claims.Role)
	})

	t.Run("TamperedTokenRejected", func(t *testing.T) {
		token, err := svc.IssueSession(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token + "x")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		expired := service.NewAuthService(repo, testConfig(-time.Minute))
		token, err := expired.IssueSession(user)
		require.NoError(t, err)

		_, err = expired.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrExpiredToken)
	})
}

func TestAuthService_LoginUpsert(t *testing.T) {
	ctx := context.Background()
	identity := service.OIDCIdentity{
		Subject:  "oidc|regular",
		Name:     "Reader",
		Email:    "reader@example.com",
		Provider: "https://idp.example.com",
	}

	t.Run("RegularUserKeepsRole", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := service.NewAuthService(repo, testConfig(time.Hour))

		repo.On("UpsertByOpenID", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.OpenID == "oidc|regular" && u.Role == models.RoleUser
		}), false).Return(nil).Once()
		repo.On("FindByOpenID", mock.Anything, "oidc|regular").
			Return(&models.User{ID: 7, OpenID: "oidc|regular", Role: models.RoleUser}, nil).Once()

		user, err := svc.LoginUpsert(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		repo.AssertExpectations(t)
	})

	t.Run("OwnerPromotedToAdmin", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := service.NewAuthService(repo, testConfig(time.Hour))

		owner := identity
		owner.Subject = "owner-open-id"

		repo.On("UpsertByOpenID", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleAdmin
		}), true).Return(nil).Once()
		repo.On("FindByOpenID", mock.Anything, "owner-open-id").
			Return(&models.User{ID: 1, OpenID: "owner-open-id", Role: models.RoleAdmin}, nil).Once()

		user, err := svc.LoginUpsert(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		repo.AssertExpectations(t)
	})
}
