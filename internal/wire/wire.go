package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers over the loaded catalog
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, repo, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSAllowedOrigins))
	r.Use(middleware.RateLimit(
		config.HTTP.RateLimitRequests,
		config.HTTP.RateLimitWindow,
		config.HTTP.RateLimitDisabled,
	))
	if config.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	r.Route("/api/movies", func(r chi.Router) {
		wireMovie(r, handler.Movie)
		wireReview(r, handler.Review)
	})
	wirePage(r, handler.Page)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]int{"movies": repo.Movie.Count()})
	})

	if config.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
