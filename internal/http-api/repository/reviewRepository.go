package repository

import (
	"errors"

	"facultyreview/internal/http-api/models"

	"gorm.io/gorm"
)

// FacultyStatsRow is one row of the grouped review aggregate scan
type FacultyStatsRow struct {
	FacultyID string
	Total     int64
	Sum       int64
}

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByFaculty(facultyID string, page, pageSize int) ([]models.Review, int64, error)
	GetRecent(limit int) ([]models.Review, error)
	CollectStats() ([]FacultyStatsRow, error)
	Delete(id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create a new review
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// GetByFaculty retrieves all reviews for a faculty member with pagination
func (r *reviewRepository) GetByFaculty(facultyID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	// Count total reviews
	if err := r.db.Model(&models.Review{}).Where("faculty_id = ?", facultyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated reviews
	offset := (page - 1) * pageSize
	err := r.db.Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetRecent retrieves the latest reviews across all faculty
func (r *reviewRepository) GetRecent(limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("created_at DESC").Limit(limit).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CollectStats returns the review count and rating sum grouped by faculty
func (r *reviewRepository) CollectStats() ([]FacultyStatsRow, error) {
	var rows []FacultyStatsRow

	err := r.db.Model(&models.Review{}).
		Select("faculty_id, COUNT(*) as total, COALESCE(SUM(rating), 0) as sum").
		Group("faculty_id").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Delete removes a review by ID
func (r *reviewRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("review not found")
	}
	return nil
}
