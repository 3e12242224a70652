package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"facultyreview/internal/http-api/dto"
	"facultyreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	statsService  service.StatsService
}

func NewReviewHandler(reviewService service.ReviewService, statsService service.StatsService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		statsService:  statsService,
	}
}

// RegisterRoutes registers review-related routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", h.Submit)         // Submit an anonymous review
		reviews.GET("/recent", h.Recent)   // Latest reviews across all faculty
		reviews.GET("/stats", h.Stats)     // Per-faculty aggregates
	}

	router.GET("/faculty/:faculty_id/reviews", h.ListByFaculty)
	router.GET("/leaderboard", h.Leaderboard)
}

// Submit accepts an anonymous review submission
// POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dto.SubmitReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	clientAddr := service.ResolveClientAddr(c.Request.Header)

	review, err := h.reviewService.SubmitReview(req, clientAddr)
	if err != nil {
		var validationErr *service.ValidationError
		var throttledErr *service.ThrottledError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.As(err, &throttledErr):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": throttledErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		}
		return
	}

	h.statsService.InvalidateCache()

	c.JSON(http.StatusOK, dto.SubmitReviewResponse{Success: true, Data: review})
}

// bindErrorMessage maps a JSON decode failure to the validator's message for
// the offending field, so a wrong-typed rating reads the same as an
// out-of-range one.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "facultyId":
			return "Invalid faculty ID"
		case "rating":
			return "Rating must be between 1 and 5"
		case "comment":
			return "Comment must be at most 500 characters"
		}
	}
	return "Invalid request body"
}

// ListByFaculty retrieves reviews for a faculty member with pagination
// GET /api/faculty/:faculty_id/reviews?page=1&page_size=20
func (h *ReviewHandler) ListByFaculty(c *gin.Context) {
	facultyID := c.Param("faculty_id")
	if facultyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faculty ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reviews, err := h.reviewService.GetFacultyReviews(facultyID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Recent retrieves the latest reviews across all faculty
// GET /api/reviews/recent?limit=20
func (h *ReviewHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reviews, err := h.reviewService.GetRecentReviews(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

// Stats retrieves the per-faculty aggregate map
// GET /api/reviews/stats
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.ReviewStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// Leaderboard retrieves the top-rated faculty with overall statistics
// GET /api/leaderboard?limit=10
func (h *ReviewHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	leaderboard, err := h.statsService.Leaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}
