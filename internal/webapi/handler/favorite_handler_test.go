package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/handler"
	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, workID int64) error {
	args := m.Called(ctx, userID, workID)
	return args.Error(0)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID, workID int64) error {
	args := m.Called(ctx, userID, workID)
	return args.Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID int64, limit, offset int) (*dto.FavoriteListResponse, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FavoriteListResponse), args.Error(1)
}

func (m *MockFavoriteService) IsFavorite(ctx context.Context, userID, workID int64) (bool, error) {
	args := m.Called(ctx, userID, workID)
	return args.Bool(0), args.Error(1)
}

func setupFavoriteRouter(mockService *MockFavoriteService, userID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if role != "" {
		r.Use(mockAuthMiddleware(userID, role))
	}

	h := handler.NewFavoriteHandler(mockService)
	h.RegisterRoutes(r.Group("/api/favorites"))
	return r
}

func TestFavoriteHandler_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 7, "user")

		mockService.On("Add", mock.Anything, int64(7), int64(3)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("DuplicateConflict", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 7, "user")

		mockService.On("Add", mock.Anything, int64(7), int64(3)).
			Return(service.ErrAlreadyFavorite).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("WorkNotFound", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 7, "user")

		mockService.On("Add", mock.Anything, int64(7), int64(999)).
			Return(service.ErrWorkNotFound).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("AnonymousRejected", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 0, "")

		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Add")
	})
}

func TestFavoriteHandler_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 7, "user")

		mockService.On("Remove", mock.Anything, int64(7), int64(3)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/favorites/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFavorited", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 7, "user")

		mockService.On("Remove", mock.Anything, int64(7), int64(3)).
			Return(service.ErrFavoriteNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/favorites/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFavoriteHandler_List(t *testing.T) {
	t.Run("ReadsRequireLogin", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 0, "")

		req, _ := http.NewRequest(http.MethodGet, "/api/favorites", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 7, "user")

		mockService.On("List", mock.Anything, int64(7), 20, 0).
			Return(&dto.FavoriteListResponse{
				Data: []dto.FavoriteResponse{
					{ID: 1, WorkID: 3, Work: &dto.WorkResponse{ID: 3, Title: "Berserk"}},
				},
				Total: 1, Limit: 20, Offset: 0,
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/favorites", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.FavoriteListResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response.Data, 1)
		assert.Equal(t, "Berserk", response.Data[0].Work.Title)
	})
}

func TestFavoriteHandler_IsFavorite(t *testing.T) {
	mockService := new(MockFavoriteService)
	r := setupFavoriteRouter(mockService, 7, "user")

	t.Run("True", func(t *testing.T) {
		mockService.On("IsFavorite", mock.Anything, int64(7), int64(3)).Return(true, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/favorites/3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.IsFavoriteResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.True(t, response.IsFavorite)
	})

	t.Run("False", func(t *testing.T) {
		mockService.On("IsFavorite", mock.Anything, int64(7), int64(4)).Return(false, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/favorites/4", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.IsFavoriteResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.False(t, response.IsFavorite)
	})
}
