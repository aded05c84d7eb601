package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireReview registers routes under /api/movies
func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/movies/{id}/reviews - empty list for unknown movies
	r.Get("/{id}/reviews", reviewHandler.GetMovieReviews)

	// GET /api/movies/{id}/review-stats
	r.Get("/{id}/review-stats", reviewHandler.GetMovieReviewStats)
}
