package dto

// FacultyStats is the per-faculty aggregate consumed by the rating displays
type FacultyStats struct {
	Total int64   `json:"total"`
	Sum   int64   `json:"sum"`
	Avg   float64 `json:"avg"`
}

// LeaderboardEntry joins a directory entry with its review aggregates
type LeaderboardEntry struct {
	FacultyID    string  `json:"faculty_id"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	School       string  `json:"school"`
	IsHOD        bool    `json:"is_hod"`
	Image        string  `json:"image,omitempty"`
	AvgRating    float64 `json:"avg_rating"`
	TotalReviews int64   `json:"total_reviews"`
}

// OverallStats summarizes review activity across the whole directory
type OverallStats struct {
	TotalReviews       int64   `json:"total_reviews"`
	AvgRating          float64 `json:"avg_rating"`
	FacultyWithReviews int     `json:"faculty_with_reviews"`
}

// LeaderboardResponse is the full leaderboard payload
type LeaderboardResponse struct {
	TopRated []LeaderboardEntry `json:"top_rated"`
	Overall  OverallStats       `json:"overall"`
}
