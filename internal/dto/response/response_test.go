package response

import (
	"testing"

	"movie-catalog/internal/data/entity"
)

func TestReviewStats(t *testing.T) {
	tests := []struct {
		name    string
		reviews []entity.Review
		want    MovieReviewStats
	}{
		{"no reviews", nil, MovieReviewStats{}},
		{"single", []entity.Review{{Rating: 4.5}}, MovieReviewStats{AverageRating: 4.5, ReviewCount: 1}},
		{"rounded", []entity.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}, MovieReviewStats{AverageRating: 4.3, ReviewCount: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReviewStats(tt.reviews); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMovieToDetailResponse(t *testing.T) {
	movie := entity.Movie{ID: 1, MovieName: "The Prison Escape", Genre: "Drama"}
	reviews := []entity.Review{
		{MovieID: 1, UserName: "alice", AvatarEmoji: "👩", Rating: 5, Comment: "great"},
	}

	got := MovieToDetailResponse(movie, reviews)

	if got.Icon != "🔒" {
		t.Fatalf("expected prison icon, got %q", got.Icon)
	}
	if len(got.Reviews) != 1 || got.Reviews[0].UserName != "alice" {
		t.Fatalf("unexpected reviews %+v", got.Reviews)
	}
	if got.ReviewStats.ReviewCount != 1 {
		t.Fatalf("expected 1 review, got %d", got.ReviewStats.ReviewCount)
	}
}

func TestMovieToDetailResponseWithoutReviews(t *testing.T) {
	got := MovieToDetailResponse(entity.Movie{ID: 9, MovieName: "Unknown Film"}, nil)

	if got.Reviews == nil {
		t.Fatalf("expected empty, non-nil reviews")
	}
	if got.Icon != "🎬" {
		t.Fatalf("expected default icon, got %q", got.Icon)
	}
}

func TestSearchResponseMessage(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "No movies found matching the search criteria"},
		{1, "Found 1 movie"},
		{3, "Found 3 movies"},
	}

	for _, tt := range tests {
		if got := (SearchResponse{TotalResults: tt.total}).Message(); got != tt.want {
			t.Fatalf("total %d: expected %q, got %q", tt.total, tt.want, got)
		}
	}
}
