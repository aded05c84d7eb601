package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetMovieReviews handles GET /api/movies/{id}/reviews
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer", nil)
		return
	}

	utils.ResponseSuccess(w, "success", h.service.GetMovieReviews(r.Context(), movieID))
}

// GetMovieReviewStats handles GET /api/movies/{id}/review-stats
func (h *ReviewHandler) GetMovieReviewStats(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer", nil)
		return
	}

	utils.ResponseSuccess(w, "success", h.service.GetMovieReviewStats(r.Context(), movieID))
}
