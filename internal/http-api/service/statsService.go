package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"facultyreview/internal/directory"
	"facultyreview/internal/http-api/dto"
	"facultyreview/internal/http-api/repository"
)

const (
	statsCacheKey       = "stats:reviews"
	leaderboardCacheKey = "stats:leaderboard"

	defaultLeaderboardSize = 10
)

type StatsService interface {
	ReviewStats() (map[string]dto.FacultyStats, error)
	Leaderboard(limit int) (*dto.LeaderboardResponse, error)
	InvalidateCache()
}

type statsService struct {
	reviewRepo repository.ReviewRepository
	dir        *directory.Directory
	cache      *repository.StatsCache
	logger     *slog.Logger
}

func NewStatsService(
	reviewRepo repository.ReviewRepository,
	dir *directory.Directory,
	cache *repository.StatsCache,
	logger *slog.Logger,
) StatsService {
	return &statsService{
		reviewRepo: reviewRepo,
		dir:        dir,
		cache:      cache,
		logger:     logger,
	}
}

// ReviewStats returns the per-faculty aggregate map. Cache errors degrade to
// the database, never to the caller.
func (s *statsService) ReviewStats() (map[string]dto.FacultyStats, error) {
	ctx := context.Background()

	var cached map[string]dto.FacultyStats
	if err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		s.logger.Warn("stats cache read failed", "error", err)
	}

	rows, err := s.reviewRepo.CollectStats()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]dto.FacultyStats, len(rows))
	for _, row := range rows {
		avg := 0.0
		if row.Total > 0 {
			avg = float64(row.Sum) / float64(row.Total)
		}
		stats[row.FacultyID] = dto.FacultyStats{
			Total: row.Total,
			Sum:   row.Sum,
			Avg:   avg,
		}
	}

	if err := s.cache.Set(ctx, statsCacheKey, stats); err != nil {
		s.logger.Warn("stats cache write failed", "error", err)
	}

	return stats, nil
}

// Leaderboard joins the aggregates with the directory and returns the top
// rated faculty, sorted by average rating, then review count.
func (s *statsService) Leaderboard(limit int) (*dto.LeaderboardResponse, error) {
	if limit < 1 {
		limit = defaultLeaderboardSize
	}

	ctx := context.Background()

	var cached dto.LeaderboardResponse
	if err := s.cache.Get(ctx, leaderboardCacheKey, &cached); err == nil && len(cached.TopRated) >= limit {
		cached.TopRated = cached.TopRated[:limit]
		return &cached, nil
	}

	stats, err := s.ReviewStats()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(stats))
	var totalReviews, totalSum int64
	for _, f := range s.dir.All() {
		st, ok := stats[f.ID]
		if !ok || st.Total == 0 {
			continue
		}
		entries = append(entries, dto.LeaderboardEntry{
			FacultyID:    f.ID,
			Name:         f.Name,
			Department:   f.Department,
			School:       f.School,
			IsHOD:        f.IsHOD,
			Image:        f.Image,
			AvgRating:    st.Avg,
			TotalReviews: st.Total,
		})
		totalReviews += st.Total
		totalSum += st.Sum
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AvgRating != entries[j].AvgRating {
			return entries[i].AvgRating > entries[j].AvgRating
		}
		return entries[i].TotalReviews > entries[j].TotalReviews
	})

	overall := dto.OverallStats{
		TotalReviews:       totalReviews,
		FacultyWithReviews: len(entries),
	}
	if totalReviews > 0 {
		overall.AvgRating = float64(totalSum) / float64(totalReviews)
	}

	response := &dto.LeaderboardResponse{
		TopRated: entries,
		Overall:  overall,
	}

	if err := s.cache.Set(ctx, leaderboardCacheKey, response); err != nil {
		s.logger.Warn("leaderboard cache write failed", "error", err)
	}

	if len(response.TopRated) > limit {
		trimmed := *response
		trimmed.TopRated = response.TopRated[:limit]
		return &trimmed, nil
	}
	return response, nil
}

// InvalidateCache drops the cached aggregates after a write
func (s *statsService) InvalidateCache() {
	if err := s.cache.Invalidate(context.Background(), statsCacheKey, leaderboardCacheKey); err != nil {
		s.logger.Warn("stats cache invalidation failed", "error", err)
	}
}
