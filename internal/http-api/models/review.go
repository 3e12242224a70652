package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is an anonymous rating for a faculty member. Rows are immutable
// after insert; the admin panel may delete them, nothing updates them.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	FacultyID string    `json:"faculty_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   *string   `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook to set UUID before creating a Review
func (review *Review) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}
