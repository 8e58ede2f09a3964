package handler_test

import (
	"bytes"
	"context"
	"encoding/base64"
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

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, data []byte, fileName, mimeType string) (*dto.UploadResponse, error) {
	args := m.Called(ctx, data, fileName, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadResponse), args.Error(1)
}

func setupUploadRouter(mockService *MockUploadService, userID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if role != "" {
		r.Use(mockAuthMiddleware(userID, role))
	}

	h := handler.NewUploadHandler(mockService)
	h.RegisterRoutes(r.Group("/api/upload"))
	return r
}

func postUpload(r *gin.Engine, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/upload/image", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadHandler_UploadImage(t *testing.T) {
	imageBytes := []byte("fake-png-bytes")
	encoded := base64.StdEncoding.EncodeToString(imageBytes)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockUploadService)
		r := setupUploadRouter(mockService, 1, "admin")

		mockService.On("UploadImage", mock.Anything, imageBytes, "cover.png", "image/png").
			Return(&dto.UploadResponse{
				Success: true,
				URL:     "http://localhost:8080/uploads/manga-covers/abc.png",
				Key:     "manga-covers/abc.png",
			}, nil).Once()

		w := postUpload(r, dto.UploadImageDTO{FileData: encoded, FileName: "cover.png", MimeType: "image/png"})

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.UploadResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.True(t, response.Success)
		assert.Equal(t, "manga-covers/abc.png", response.Key)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidBase64", func(t *testing.T) {
		mockService := new(MockUploadService)
		r := setupUploadRouter(mockService, 1, "admin")

		w := postUpload(r, dto.UploadImageDTO{FileData: "!!not-base64!!", FileName: "cover.png", MimeType: "image/png"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "UploadImage")
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockService := new(MockUploadService)
		r := setupUploadRouter(mockService, 1, "admin")

		w := postUpload(r, map[string]string{"fileData": encoded})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "UploadImage")
	})

	t.Run("ValidationErrorFromService", func(t *testing.T) {
		mockService := new(MockUploadService)
		r := setupUploadRouter(mockService, 1, "admin")

		mockService.On("UploadImage", mock.Anything, imageBytes, "cover.pdf", "application/pdf").
			Return(nil, service.ErrUnsupportedType).Once()

		w := postUpload(r, dto.UploadImageDTO{FileData: encoded, FileName: "cover.pdf", MimeType: "application/pdf"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("RegularUserForbidden", func(t *testing.T) {
		mockService := new(MockUploadService)
		r := setupUploadRouter(mockService, 2, "user")

		w := postUpload(r, dto.UploadImageDTO{FileData: encoded, FileName: "cover.png", MimeType: "image/png"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "UploadImage")
	})
}
