package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"facultyreview/internal/http-api/dto"
	"facultyreview/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminLogin_Success(t *testing.T) {
	mockAdmin := new(MockAdminService)
	mockReviews := new(MockReviewService)
	mockStats := new(MockStatsService)
	h := NewAdminHandler(mockAdmin, mockReviews, mockStats)
	router := setupRouter()
	router.POST("/api/admin/login", h.Login)

	mockAdmin.On("Login", "moderation-password").Return("admin-token", int64(3600), nil)

	w := postJSON(router, "/api/admin/login", `{"password":"moderation-password"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AdminLoginResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "admin-token", response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(3600), response.ExpiresIn)

	mockAdmin.AssertExpectations(t)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	mockAdmin := new(MockAdminService)
	mockReviews := new(MockReviewService)
	mockStats := new(MockStatsService)
	h := NewAdminHandler(mockAdmin, mockReviews, mockStats)
	router := setupRouter()
	router.POST("/api/admin/login", h.Login)

	mockAdmin.On("Login", "guess").Return("", int64(0), service.ErrInvalidCredentials)

	w := postJSON(router, "/api/admin/login", `{"password":"guess"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogin_MissingPassword(t *testing.T) {
	mockAdmin := new(MockAdminService)
	mockReviews := new(MockReviewService)
	mockStats := new(MockStatsService)
	h := NewAdminHandler(mockAdmin, mockReviews, mockStats)
	router := setupRouter()
	router.POST("/api/admin/login", h.Login)

	w := postJSON(router, "/api/admin/login", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAdmin.AssertNotCalled(t, "Login", mock.Anything)
}

func TestDeleteReview_Success(t *testing.T) {
	mockAdmin := new(MockAdminService)
	mockReviews := new(MockReviewService)
	mockStats := new(MockStatsService)
	h := NewAdminHandler(mockAdmin, mockReviews, mockStats)
	router := setupRouter()
	router.DELETE("/api/admin/reviews/:id", h.DeleteReview)

	mockReviews.On("DeleteReview", "review-123").Return(nil)
	mockStats.On("InvalidateCache").Return()

	req, _ := http.NewRequest("DELETE", "/api/admin/reviews/review-123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Review deleted successfully", response["message"])

	mockReviews.AssertExpectations(t)
	mockStats.AssertExpectations(t)
}

func TestDeleteReview_NotFound(t *testing.T) {
	mockAdmin := new(MockAdminService)
	mockReviews := new(MockReviewService)
	mockStats := new(MockStatsService)
	h := NewAdminHandler(mockAdmin, mockReviews, mockStats)
	router := setupRouter()
	router.DELETE("/api/admin/reviews/:id", h.DeleteReview)

	mockReviews.On("DeleteReview", "missing").Return(errors.New("review not found"))

	req, _ := http.NewRequest("DELETE", "/api/admin/reviews/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockStats.AssertNotCalled(t, "InvalidateCache")
}
