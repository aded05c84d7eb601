package usecase

import (
	"context"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/search"
	"movie-catalog/pkg/metrics"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

const (
	searchKindCriteria = "criteria"
	searchKindName     = "name"
	searchKindGenre    = "genre"
)

type MovieService interface {
	GetMovies(ctx context.Context) []response.MovieResponse
	GetMovieByID(ctx context.Context, movieID *int64) *response.MovieDetailResponse
	SearchMovies(ctx context.Context, req *request.SearchRequest) *response.SearchResponse
	SearchMoviesByName(ctx context.Context, name *string) []response.MovieResponse
	SearchMoviesByGenre(ctx context.Context, genre *string) []response.MovieResponse
}

type movieService struct {
	repo   *repository.Repository
	engine *search.Engine
	log    *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	engine *search.Engine,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:   repo,
		engine: engine,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) []response.MovieResponse {
	movies := s.repo.Movie.FindAll()

	utils.LoggerFromContext(ctx, s.log).Debug("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies)
}

// GetMovieByID returns nil when movieID is nil, not positive, or unknown.
func (s *movieService) GetMovieByID(ctx context.Context, movieID *int64) *response.MovieDetailResponse {
	log := utils.LoggerFromContext(ctx, s.log)

	if movieID == nil {
		return nil
	}

	movie, ok := s.repo.Movie.FindByID(*movieID)
	if !ok {
		log.Debug("Movie not found", zap.Int64("movie_id", *movieID))
		return nil
	}

	reviews := s.repo.Review.FindByMovieID(movie.ID)

	log.Debug("Movie retrieved",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.MovieName),
		zap.Int("review_count", len(reviews)),
	)

	detail := response.MovieToDetailResponse(movie, reviews)
	return &detail
}

func (s *movieService) SearchMovies(ctx context.Context, req *request.SearchRequest) *response.SearchResponse {
	if req == nil {
		req = &request.SearchRequest{}
	}

	movies := s.engine.Search(search.Criteria{
		Name:  search.FromPtr(req.Name),
		ID:    req.ID,
		Genre: search.FromPtr(req.Genre),
	})
	metrics.RecordSearch(searchKindCriteria, len(movies))

	utils.LoggerFromContext(ctx, s.log).Info("Search completed",
		zap.Stringp("name", req.Name),
		zap.Int64p("id", req.ID),
		zap.Stringp("genre", req.Genre),
		zap.Int("results", len(movies)),
	)

	return &response.SearchResponse{
		Movies:       response.MoviesToResponse(movies),
		TotalResults: len(movies),
		SearchCriteria: response.SearchCriteria{
			Name:  req.Name,
			ID:    req.ID,
			Genre: req.Genre,
		},
	}
}

func (s *movieService) SearchMoviesByName(ctx context.Context, name *string) []response.MovieResponse {
	movies := s.engine.SearchByName(search.FromPtr(name))
	metrics.RecordSearch(searchKindName, len(movies))

	utils.LoggerFromContext(ctx, s.log).Info("Search by name completed",
		zap.Stringp("name", name),
		zap.Int("results", len(movies)),
	)

	return response.MoviesToResponse(movies)
}

func (s *movieService) SearchMoviesByGenre(ctx context.Context, genre *string) []response.MovieResponse {
	movies := s.engine.SearchByGenre(search.FromPtr(genre))
	metrics.RecordSearch(searchKindGenre, len(movies))

	utils.LoggerFromContext(ctx, s.log).Info("Search by genre completed",
		zap.Stringp("genre", genre),
		zap.Int("results", len(movies)),
	)

	return response.MoviesToResponse(movies)
}
