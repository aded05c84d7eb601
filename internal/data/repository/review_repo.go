package repository

import (
	"slices"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// ReviewRepository is the review store keyed by movie id.
type ReviewRepository interface {
	FindByMovieID(movieID int64) []entity.Review
}

type reviewRepository struct {
	reviews map[int64][]entity.Review
	log     *zap.Logger
}

func NewReviewRepository(reviews map[int64][]entity.Review, log *zap.Logger) ReviewRepository {
	r := &reviewRepository{
		reviews: make(map[int64][]entity.Review, len(reviews)),
		log:     log.With(zap.String("repository", "review")),
	}

	for id, group := range reviews {
		r.reviews[id] = slices.Clone(group)
	}

	return r
}

// FindByMovieID returns the reviews in source order; unknown ids give an empty, non-nil slice.
func (r *reviewRepository) FindByMovieID(movieID int64) []entity.Review {
	group, ok := r.reviews[movieID]
	if !ok {
		return []entity.Review{}
	}
	return slices.Clone(group)
}
