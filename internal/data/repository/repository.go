package repository

import (
	"movie-catalog/internal/data/loader"

	"go.uber.org/zap"
)

// Repository holds the read-only catalog snapshot shared by every request.
type Repository struct {
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(result *loader.Result, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(result.Movies, log),
		Review: NewReviewRepository(result.Reviews, log),
	}
}
