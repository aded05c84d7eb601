package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireMovie registers routes under /api/movies
func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - full catalog in source order
	r.Get("/", movieHandler.GetMovies)

	// GET /api/movies/search?name=&id=&genre=
	r.Get("/search", movieHandler.SearchMovies)
	r.Get("/search/name", movieHandler.SearchMoviesByName)
	r.Get("/search/genre", movieHandler.SearchMoviesByGenre)

	// GET /api/movies/{id} - movie with reviews and stats
	r.Get("/{id}", movieHandler.GetMovieByID)
}
