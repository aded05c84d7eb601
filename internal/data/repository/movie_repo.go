package repository

import (
	"slices"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// MovieRepository is the catalog index: movies in source order plus an id lookup.
type MovieRepository interface {
	FindAll() []entity.Movie
	FindByID(id int64) (entity.Movie, bool)
	Count() int
}

type movieRepository struct {
	movies []entity.Movie
	byID   map[int64]int
	log    *zap.Logger
}

// NewMovieRepository indexes movies, which must already have unique positive ids.
// The slice is copied so later changes by the caller cannot reach the index.
func NewMovieRepository(movies []entity.Movie, log *zap.Logger) MovieRepository {
	r := &movieRepository{
		movies: slices.Clone(movies),
		byID:   make(map[int64]int, len(movies)),
		log:    log.With(zap.String("repository", "movie")),
	}

	for i, movie := range r.movies {
		r.byID[movie.ID] = i
	}

	r.log.Debug("Catalog index built", zap.Int("count", len(r.movies)))
	return r
}

func (r *movieRepository) FindAll() []entity.Movie {
	out := make([]entity.Movie, len(r.movies))
	copy(out, r.movies)
	return out
}

func (r *movieRepository) FindByID(id int64) (entity.Movie, bool) {
	// No record can carry a non-positive id.
	if id <= 0 {
		return entity.Movie{}, false
	}

	i, ok := r.byID[id]
	if !ok {
		return entity.Movie{}, false
	}
	return r.movies[i], true
}

func (r *movieRepository) Count() int {
	return len(r.movies)
}
