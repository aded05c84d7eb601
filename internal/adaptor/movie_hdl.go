package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies := h.service.GetMovies(r.Context())
	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer", nil)
		return
	}

	movie := h.service.GetMovieByID(r.Context(), &movieID)
	if movie == nil {
		utils.LoggerFromContext(r.Context(), h.log).Warn("Movie not found", zap.Int64("movie_id", movieID))
		utils.ResponseNotFound(w, "Movie not found")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// SearchMovies handles GET /api/movies/search?name=&id=&genre=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseSearchRequest(r.URL.Query())
	if err != nil {
		utils.LoggerFromContext(r.Context(), h.log).Warn("Invalid search parameters", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid search parameters", map[string]string{"id": "Must be an integer"})
		return
	}

	result := h.service.SearchMovies(r.Context(), req)
	utils.ResponseSuccess(w, result.Message(), result)
}

// SearchMoviesByName handles GET /api/movies/search/name?name=
func (h *MovieHandler) SearchMoviesByName(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.SearchMoviesByName(r.Context(), queryParam(r, "name")))
}

// SearchMoviesByGenre handles GET /api/movies/search/genre?genre=
func (h *MovieHandler) SearchMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.SearchMoviesByGenre(r.Context(), queryParam(r, "genre")))
}
