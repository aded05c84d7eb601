package adaptor

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"stars": stars,
}).ParseFS(templateFS, "templates/*.html"))

type moviesPage struct {
	Movies          []response.MovieResponse
	SearchPerformed bool
	SearchName      string
	SearchID        string
	SearchGenre     string
	SearchMessage   string
}

type errorPage struct {
	Title   string
	Message string
}

// PageHandler serves the browser-facing HTML views.
type PageHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewPageHandler(service usecase.MovieService, log *zap.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		log:     log.With(zap.String("handler", "page")),
	}
}

// Movies handles GET /movies
func (h *PageHandler) Movies(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "movies.html", moviesPage{
		Movies: h.service.GetMovies(r.Context()),
	})
}

// Search handles GET /movies/search
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := request.ParseSearchRequest(r.URL.Query())
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "error.html", errorPage{
			Title:   "Invalid Search",
			Message: "The movie ID must be a whole number.",
		})
		return
	}

	result := h.service.SearchMovies(r.Context(), req)

	page := moviesPage{
		Movies:          result.Movies,
		SearchPerformed: true,
		SearchMessage:   result.Message(),
	}
	if req.Name != nil {
		page.SearchName = *req.Name
	}
	if req.ID != nil {
		page.SearchID = strconv.FormatInt(*req.ID, 10)
	}
	if req.Genre != nil {
		page.SearchGenre = *req.Genre
	}

	h.render(w, r, http.StatusOK, "movies.html", page)
}

// Details handles GET /movies/{id}/details
func (h *PageHandler) Details(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDParam(r)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, "error.html", errorPage{
			Title:   "Invalid Movie ID",
			Message: "The movie ID must be a whole number.",
		})
		return
	}

	movie := h.service.GetMovieByID(r.Context(), &movieID)
	if movie == nil {
		utils.LoggerFromContext(r.Context(), h.log).Warn("Movie not found", zap.Int64("movie_id", movieID))
		h.render(w, r, http.StatusNotFound, "error.html", errorPage{
			Title:   "Movie Not Found",
			Message: fmt.Sprintf("Movie with ID %d was not found.", movieID),
		})
		return
	}

	h.render(w, r, http.StatusOK, "movie-details.html", movie)
}

// render executes into a buffer so a template failure never leaves a half-written page.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		utils.LoggerFromContext(r.Context(), h.log).Error("Failed to render page",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// stars renders a 0-5 rating as filled and empty stars, rounding to the nearest whole star.
func stars(rating float64) string {
	filled := int(rating + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}

	var buf bytes.Buffer
	for i := 0; i < 5; i++ {
		if i < filled {
			buf.WriteString("★")
		} else {
			buf.WriteString("☆")
		}
	}
	return buf.String()
}
