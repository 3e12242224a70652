package models

import "time"

// RateLimit tracks the most recent accepted submission per pseudonymous
// client key. The key is a sha256 digest of the resolved client address and
// a server secret, never the raw address. At most one row exists per key.
type RateLimit struct {
	IPHash       string    `json:"ip_hash" gorm:"primaryKey;size:64"`
	LastReviewAt time.Time `json:"last_review_at" gorm:"not null"`
	ReviewCount  int64     `json:"review_count" gorm:"not null;default:0"`
}

func (RateLimit) TableName() string {
	return "rate_limits"
}
