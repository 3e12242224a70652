package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"facultyreview/internal/http-api/dto"
	"facultyreview/internal/http-api/models"
	"facultyreview/internal/http-api/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 500

type ReviewService interface {
	SubmitReview(req dto.SubmitReviewDTO, clientAddr string) (*models.Review, error)
	GetFacultyReviews(facultyID string, page, pageSize int) (*dto.PaginatedReviewResponse, error)
	GetRecentReviews(limit int) ([]dto.ReviewResponse, error)
	DeleteReview(id string) error
}

type reviewService struct {
	reviewRepo    repository.ReviewRepository
	rateLimitRepo repository.RateLimitRepository
	ipHashSecret  string
	cooldown      time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	rateLimitRepo repository.RateLimitRepository,
	ipHashSecret string,
	cooldown time.Duration,
	logger *slog.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		rateLimitRepo: rateLimitRepo,
		ipHashSecret:  ipHashSecret,
		cooldown:      cooldown,
		logger:        logger,
		now:           time.Now,
	}
}

// SubmitReview runs the submission pipeline: validate the payload, consult
// the persisted throttle record for the client key, insert the review, then
// update the throttle bookkeeping. Validation and throttling rejections are
// side-effect free.
func (s *reviewService) SubmitReview(req dto.SubmitReviewDTO, clientAddr string) (*models.Review, error) {
	facultyID, rating, comment, err := validateSubmission(req)
	if err != nil {
		return nil, err
	}

	ipHash := HashClientAddr(clientAddr, s.ipHashSecret)

	record, err := s.rateLimitRepo.GetByHash(ipHash)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("rate limit lookup: %w", err)
	}

	if record != nil {
		elapsed := s.now().Sub(record.LastReviewAt)
		if elapsed < s.cooldown {
			wait := int(math.Ceil((s.cooldown - elapsed).Minutes()))
			return nil, &ThrottledError{WaitMinutes: wait}
		}
	}

	review := &models.Review{
		FacultyID: facultyID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	// Bookkeeping is best-effort: the review is already durable, so a failed
	// upsert is logged and swallowed rather than failing the request.
	var count int64
	if record != nil {
		count = record.ReviewCount
	}
	if err := s.rateLimitRepo.Upsert(&models.RateLimit{
		IPHash:       ipHash,
		LastReviewAt: s.now(),
		ReviewCount:  count + 1,
	}); err != nil {
		s.logger.Error("rate limit update failed", "error", err)
	}

	return review, nil
}

// validateSubmission checks the payload and returns the normalized fields.
// Ratings must be integral; a non-empty comment is length-checked raw and
// stored trimmed, an empty or whitespace-only comment is stored as null.
func validateSubmission(req dto.SubmitReviewDTO) (string, int, *string, error) {
	if req.FacultyID == nil || *req.FacultyID == "" {
		return "", 0, nil, &ValidationError{Message: "Invalid faculty ID"}
	}

	if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 || *req.Rating != math.Trunc(*req.Rating) {
		return "", 0, nil, &ValidationError{Message: "Rating must be between 1 and 5"}
	}

	var comment *string
	if req.Comment != nil && *req.Comment != "" {
		if utf8.RuneCountInString(*req.Comment) > maxCommentLength {
			return "", 0, nil, &ValidationError{Message: "Comment must be at most 500 characters"}
		}
		if trimmed := strings.TrimSpace(*req.Comment); trimmed != "" {
			comment = &trimmed
		}
	}

	return *req.FacultyID, int(*req.Rating), comment, nil
}

// GetFacultyReviews retrieves all reviews for a faculty member with pagination
func (s *reviewService) GetFacultyReviews(facultyID string, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	reviews, total, err := s.reviewRepo.GetByFaculty(facultyID, page, pageSize)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, *dto.FromModelToReviewResponse(&review))
	}

	return dto.NewPaginatedReviewResponse(reviewResponses, int(total), page, pageSize), nil
}

// GetRecentReviews retrieves the latest reviews across all faculty
func (s *reviewService) GetRecentReviews(limit int) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.GetRecent(limit)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, *dto.FromModelToReviewResponse(&review))
	}

	return reviewResponses, nil
}

// DeleteReview removes a review (admin moderation only)
func (s *reviewService) DeleteReview(id string) error {
	return s.reviewRepo.Delete(id)
}
