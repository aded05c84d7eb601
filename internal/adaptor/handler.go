package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errInvalidMovieID = errors.New("invalid movie id")

type Handler struct {
	Movie  *MovieHandler
	Review *ReviewHandler
	Page   *PageHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
		Page:   NewPageHandler(service.Movie, log),
	}
}

// movieIDParam reads the {id} path segment as an integer.
func movieIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidMovieID
	}
	return id, nil
}

// queryParam returns nil when key is missing from the query string.
func queryParam(r *http.Request, key string) *string {
	query := r.URL.Query()
	if !query.Has(key) {
		return nil
	}
	v := query.Get(key)
	return &v
}
