package usecase

import (
	"context"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetMovieReviews(ctx context.Context, movieID int64) []response.ReviewResponse
	GetMovieReviewStats(ctx context.Context, movieID int64) response.MovieReviewStats
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// GetMovieReviews returns an empty list for movies without reviews, including unknown ids.
func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64) []response.ReviewResponse {
	reviews := s.repo.Review.FindByMovieID(movieID)

	utils.LoggerFromContext(ctx, s.log).Debug("Reviews retrieved",
		zap.Int64("movie_id", movieID),
		zap.Int("count", len(reviews)),
	)

	return response.ReviewsToResponse(reviews)
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID int64) response.MovieReviewStats {
	stats := response.ReviewStats(s.repo.Review.FindByMovieID(movieID))

	utils.LoggerFromContext(ctx, s.log).Debug("Review stats computed",
		zap.Int64("movie_id", movieID),
		zap.Int64("review_count", stats.ReviewCount),
		zap.Float64("avg_rating", stats.AverageRating),
	)

	return stats
}
