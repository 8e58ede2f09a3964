package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mangarate/internal/webapi/dto"
	"mangarate/internal/webapi/handler"
	"mangarate/internal/webapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, userID, workID int64, content string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, userID, workID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID, callerID int64, callerRole string) error {
	args := m.Called(ctx, reviewID, callerID, callerRole)
	return args.Error(0)
}

func (m *MockReviewService) GetWorkReviews(ctx context.Context, workID int64, limit, offset int) (*dto.PaginatedReviewResponse, error) {
	args := m.Called(ctx, workID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetUserReviews(ctx context.Context, userID int64, limit, offset int) (*dto.PaginatedReviewResponse, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedReviewResponse), args.Error(1)
}

func setupReviewRouter(mockService *MockReviewService, userID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if role != "" {
		r.Use(mockAuthMiddleware(userID, role))
	}

	h := handler.NewReviewHandler(mockService)
	h.RegisterWorkRoutes(r.Group("/api/works"))
	h.RegisterRoutes(r.Group("/api/reviews"))
	return r
}

func TestReviewHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 7, "user")

		mockService.On("CreateReview", mock.Anything, int64(7), int64(3), "Peak fiction.").
			Return(&dto.ReviewResponse{ID: 1, WorkID: 3, Author: "reader", Content: "Peak fiction."}, nil).Once()

		body, _ := json.Marshal(dto.CreateReviewDTO{Content: "Peak fiction."})
		req, _ := http.NewRequest(http.MethodPost, "/api/works/3/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.ReviewResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "reader", response.Author)
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyContentRejected", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 7, "user")

		body, _ := json.Marshal(map[string]string{"content": ""})
		req, _ := http.NewRequest(http.MethodPost, "/api/works/3/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateReview")
	})

	t.Run("OversizedContentRejected", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 7, "user")

		body, _ := json.Marshal(map[string]string{"content": strings.Repeat("a", 5001)})
		req, _ := http.NewRequest(http.MethodPost, "/api/works/3/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateReview")
	})

	t.Run("AnonymousRejected", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 0, "")

		body, _ := json.Marshal(dto.CreateReviewDTO{Content: "nice"})
		req, _ := http.NewRequest(http.MethodPost, "/api/works/3/reviews", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestReviewHandler_ListByWork(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService, 0, "")

	t.Run("DefaultPagination", func(t *testing.T) {
		mockService.On("GetWorkReviews", mock.Anything, int64(3), 10, 0).
			Return(&dto.PaginatedReviewResponse{
				Data:  []dto.ReviewResponse{{ID: 1, Content: "good"}},
				Total: 1, Limit: 10, Offset: 0,
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/works/3/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.PaginatedReviewResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, int64(1), response.Total)
		mockService.AssertExpectations(t)
	})

	t.Run("WorkNotFound", func(t *testing.T) {
		mockService.On("GetWorkReviews", mock.Anything, int64(999), 10, 0).
			Return(nil, service.ErrWorkNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/works/999/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	t.Run("OwnerDeletes", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 7, "user")

		mockService.On("DeleteReview", mock.Anything, int64(12), int64(7), "user").Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/reviews/12", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 8, "user")

		mockService.On("DeleteReview", mock.Anything, int64(12), int64(8), "user").
			Return(service.ErrNotReviewOwner).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/reviews/12", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService, 7, "user")

		mockService.On("DeleteReview", mock.Anything, int64(999), int64(7), "user").
			Return(service.ErrReviewNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/reviews/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_ListMine(t *testing.T) {
	mockService := new(MockReviewService)
	r := setupReviewRouter(mockService, 7, "user")

	mockService.On("GetUserReviews", mock.Anything, int64(7), 20, 0).
		Return(&dto.PaginatedReviewResponse{Data: []dto.ReviewResponse{}, Limit: 20}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/reviews/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
