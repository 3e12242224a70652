package repository

import (
	"facultyreview/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RateLimitRepository interface {
	GetByHash(ipHash string) (*models.RateLimit, error)
	Upsert(record *models.RateLimit) error
}

type rateLimitRepository struct {
	db *gorm.DB
}

func NewRateLimitRepository(db *gorm.DB) RateLimitRepository {
	return &rateLimitRepository{db: db}
}

// GetByHash retrieves the throttle record for a client key
func (r *rateLimitRepository) GetByHash(ipHash string) (*models.RateLimit, error) {
	var record models.RateLimit
	err := r.db.Where("ip_hash = ?", ipHash).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert inserts the record, or updates it in place when the key exists.
// The ON CONFLICT clause keeps insert-or-update a single atomic statement.
func (r *rateLimitRepository) Upsert(record *models.RateLimit) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ip_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_review_at", "review_count"}),
	}).Create(record).Error
}
