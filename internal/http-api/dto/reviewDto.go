package dto

import (
	"time"

	"facultyreview/internal/http-api/models"
)

// SubmitReviewDTO carries a raw review submission. Fields are pointers so the
// validator can tell an absent field from a zero value, and rating binds as a
// float so non-integer numbers reach the validator instead of failing decode.
type SubmitReviewDTO struct {
	FacultyID *string  `json:"facultyId"`
	Rating    *float64 `json:"rating"`
	Comment   *string  `json:"comment"`
}

// SubmitReviewResponse wraps a persisted review for the 200 response
type SubmitReviewResponse struct {
	Success bool           `json:"success"`
	Data    *models.Review `json:"data"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID        string    `json:"id"`
	FacultyID string    `json:"faculty_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		FacultyID: review.FacultyID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// PaginatedReviewResponse for returning paginated reviews
type PaginatedReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedReviewResponse creates a paginated review response
func NewPaginatedReviewResponse(data []ReviewResponse, total, page, pageSize int) *PaginatedReviewResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedReviewResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
