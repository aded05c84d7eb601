package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/search"

	"go.uber.org/zap"
)

type Service struct {
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	engine := search.NewEngine(repo.Movie, log)

	return &Service{
		Movie:  NewMovieService(repo, engine, log),
		Review: NewReviewService(repo, log),
	}
}
