package service

import (
	"io"
	"log/slog"
	"testing"

	"facultyreview/internal/directory"
	"facultyreview/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
)

func testDirectory() *directory.Directory {
	return directory.New([]directory.Faculty{
		{ID: "cs-alice@example.edu", Name: "Alice", Department: "Computer Science", School: "Engineering"},
		{ID: "cs-hod-bob@example.edu", Name: "Bob", Department: "Computer Science", School: "Engineering", IsHOD: true},
		{ID: "ma-carol@example.edu", Name: "Carol", Department: "Mathematics", School: "Science"},
		{ID: "ph-dave@example.edu", Name: "Dave", Department: "Physics", School: "Science"},
	})
}

func newTestStatsService(reviewRepo *MockReviewRepository) StatsService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStatsService(reviewRepo, testDirectory(), nil, logger)
}

func TestReviewStats(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newTestStatsService(reviewRepo)

	reviewRepo.On("CollectStats").Return([]repository.FacultyStatsRow{
		{FacultyID: "cs-alice@example.edu", Total: 4, Sum: 18},
		{FacultyID: "ma-carol@example.edu", Total: 1, Sum: 3},
	}, nil)

	stats, err := svc.ReviewStats()

	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, int64(4), stats["cs-alice@example.edu"].Total)
	assert.InDelta(t, 4.5, stats["cs-alice@example.edu"].Avg, 0.001)
	assert.InDelta(t, 3.0, stats["ma-carol@example.edu"].Avg, 0.001)
}

func TestLeaderboard_SortsByAvgThenCount(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newTestStatsService(reviewRepo)

	reviewRepo.On("CollectStats").Return([]repository.FacultyStatsRow{
		{FacultyID: "cs-alice@example.edu", Total: 2, Sum: 8},        // avg 4.0
		{FacultyID: "cs-hod-bob@example.edu", Total: 5, Sum: 20},     // avg 4.0, more reviews
		{FacultyID: "ma-carol@example.edu", Total: 1, Sum: 5},        // avg 5.0
		{FacultyID: "gone-from-directory@example.edu", Total: 9, Sum: 45}, // not listed anymore
	}, nil)

	board, err := svc.Leaderboard(10)

	assert.NoError(t, err)
	// Entries without a directory match are dropped
	assert.Len(t, board.TopRated, 3)
	assert.Equal(t, "ma-carol@example.edu", board.TopRated[0].FacultyID)
	// Ties on average rating break on review count
	assert.Equal(t, "cs-hod-bob@example.edu", board.TopRated[1].FacultyID)
	assert.Equal(t, "cs-alice@example.edu", board.TopRated[2].FacultyID)

	assert.Equal(t, int64(8), board.Overall.TotalReviews)
	assert.Equal(t, 3, board.Overall.FacultyWithReviews)
	assert.InDelta(t, 33.0/8.0, board.Overall.AvgRating, 0.001)
}

func TestLeaderboard_LimitTrimsEntries(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newTestStatsService(reviewRepo)

	reviewRepo.On("CollectStats").Return([]repository.FacultyStatsRow{
		{FacultyID: "cs-alice@example.edu", Total: 1, Sum: 5},
		{FacultyID: "ma-carol@example.edu", Total: 1, Sum: 4},
		{FacultyID: "ph-dave@example.edu", Total: 1, Sum: 3},
	}, nil)

	board, err := svc.Leaderboard(2)

	assert.NoError(t, err)
	assert.Len(t, board.TopRated, 2)
	// Overall still covers everyone with reviews
	assert.Equal(t, int64(3), board.Overall.TotalReviews)
	assert.Equal(t, 3, board.Overall.FacultyWithReviews)
}

func TestLeaderboard_NoReviews(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	svc := newTestStatsService(reviewRepo)

	reviewRepo.On("CollectStats").Return([]repository.FacultyStatsRow{}, nil)

	board, err := svc.Leaderboard(10)

	assert.NoError(t, err)
	assert.Empty(t, board.TopRated)
	assert.Equal(t, int64(0), board.Overall.TotalReviews)
	assert.Equal(t, 0.0, board.Overall.AvgRating)
}
