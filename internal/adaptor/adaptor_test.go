package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/loader"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestRouter() http.Handler {
	result := &loader.Result{
		Movies: []entity.Movie{
			{ID: 1, MovieName: "The Prison Escape", Director: "Frank Darabont", Year: 1994, Genre: "Drama", Duration: 142, ImdbRating: 9.3},
			{ID: 2, MovieName: "The Family Boss", Director: "Francis Ford Coppola", Year: 1972, Genre: "Crime/Drama", Duration: 175, ImdbRating: 9.2},
		},
		Reviews: map[int64][]entity.Review{
			1: {{MovieID: 1, UserName: "alice", AvatarEmoji: "👩", Rating: 5, Comment: "<b>Loved it</b>"}},
		},
	}
	log := zap.NewNop()
	service := usecase.NewService(repository.NewRepository(result, log), log)
	h := NewHandler(service, log)

	r := chi.NewRouter()
	r.Get("/api/movies", h.Movie.GetMovies)
	r.Get("/api/movies/search", h.Movie.SearchMovies)
	r.Get("/api/movies/search/name", h.Movie.SearchMoviesByName)
	r.Get("/api/movies/search/genre", h.Movie.SearchMoviesByGenre)
	r.Get("/api/movies/{id}", h.Movie.GetMovieByID)
	r.Get("/api/movies/{id}/reviews", h.Review.GetMovieReviews)
	r.Get("/api/movies/{id}/review-stats", h.Review.GetMovieReviewStats)
	r.Get("/movies", h.Page.Movies)
	r.Get("/movies/search", h.Page.Search)
	r.Get("/movies/{id}/details", h.Page.Details)
	return r
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestGetMoviesHandler(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/movies")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var movies []struct {
		ID   int64  `json:"id"`
		Icon string `json:"icon"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &movies); err != nil {
		t.Fatalf("decode movies: %v", err)
	}
	if len(movies) != 2 || movies[0].ID != 1 || movies[1].Icon != "👔" {
		t.Fatalf("unexpected movies %+v", movies)
	}
}

func TestGetMovieByIDHandler(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"found", "/api/movies/1", http.StatusOK},
		{"unknown", "/api/movies/999", http.StatusNotFound},
		{"zero", "/api/movies/0", http.StatusNotFound},
		{"negative", "/api/movies/-1", http.StatusNotFound},
		{"not an integer", "/api/movies/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)
			if rec.Code != tt.status {
				t.Fatalf("expected %d got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if env := decode(t, rec); env.Status != (tt.status == http.StatusOK) {
				t.Fatalf("unexpected envelope status %v", env.Status)
			}
		})
	}
}

func TestSearchMoviesHandler(t *testing.T) {
	router := newTestRouter()

	rec := get(t, router, "/api/movies/search?name=family&genre=crime")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Found 1 movie" {
		t.Fatalf("unexpected message %q", env.Message)
	}

	var data struct {
		Movies         []struct{ ID int64 } `json:"movies"`
		TotalResults   int                  `json:"total_results"`
		SearchCriteria struct {
			Name  *string `json:"name"`
			ID    *int64  `json:"id"`
			Genre *string `json:"genre"`
		} `json:"search_criteria"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if data.TotalResults != 1 || data.Movies[0].ID != 2 {
		t.Fatalf("unexpected result %+v", data)
	}
	if data.SearchCriteria.ID != nil || *data.SearchCriteria.Name != "family" {
		t.Fatalf("unexpected criteria %+v", data.SearchCriteria)
	}
}

func TestSearchMoviesHandlerNoResults(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/movies/search?id=999")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if env := decode(t, rec); env.Message != "No movies found matching the search criteria" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestSearchMoviesHandlerRejectsNonIntegerID(t *testing.T) {
	rec := get(t, newTestRouter(), "/api/movies/search?id=one")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if env := decode(t, rec); env.Status || len(env.Errors) == 0 {
		t.Fatalf("expected failure envelope with errors got %+v", env)
	}
}

func TestSearchByNameAndGenreHandlers(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		target string
		count  int
	}{
		{"/api/movies/search/name", 0},
		{"/api/movies/search/name?name=", 0},
		{"/api/movies/search/name?name=the", 2},
		{"/api/movies/search/genre?genre=crime", 1},
		{"/api/movies/search/genre?genre=%20", 0},
	}

	for _, tt := range tests {
		rec := get(t, router, tt.target)
		var movies []json.RawMessage
		if err := json.Unmarshal(decode(t, rec).Data, &movies); err != nil {
			t.Fatalf("%s: decode: %v", tt.target, err)
		}
		if len(movies) != tt.count {
			t.Fatalf("%s: expected %d got %d", tt.target, tt.count, len(movies))
		}
	}
}

func TestReviewHandlers(t *testing.T) {
	router := newTestRouter()

	rec := get(t, router, "/api/movies/999/reviews")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown movie got %d", rec.Code)
	}
	if data := string(decode(t, rec).Data); data != "[]" {
		t.Fatalf("expected empty list got %s", data)
	}

	rec = get(t, router, "/api/movies/1/review-stats")
	var stats struct {
		AverageRating float64 `json:"average_rating"`
		ReviewCount   int64   `json:"review_count"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.ReviewCount != 1 || stats.AverageRating != 5 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if rec := get(t, router, "/api/movies/x/reviews"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestPages(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
	}{
		{"list", "/movies", http.StatusOK, []string{"The Prison Escape", "🔒", "/movies/2/details"}},
		{"search", "/movies/search?name=prison", http.StatusOK, []string{"Found 1 movie", `value="prison"`}},
		{"search without match", "/movies/search?genre=western", http.StatusOK, []string{"No movies found"}},
		{"search bad id", "/movies/search?id=x", http.StatusBadRequest, []string{"Invalid Search"}},
		{"details", "/movies/1/details", http.StatusOK, []string{"Frank Darabont", "alice", "★★★★★", "&lt;b&gt;Loved it&lt;/b&gt;"}},
		{"details without reviews", "/movies/2/details", http.StatusOK, []string{"No reviews yet."}},
		{"details not found", "/movies/42/details", http.StatusNotFound, []string{"Movie with ID 42 was not found."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)
			if rec.Code != tt.status {
				t.Fatalf("expected %d got %d", tt.status, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Fatalf("expected html content type got %q", ct)
			}
			body := rec.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Fatalf("expected body to contain %q", want)
				}
			}
		})
	}
}

func TestStars(t *testing.T) {
	tests := map[float64]string{
		0:   "☆☆☆☆☆",
		2.4: "★★☆☆☆",
		4.5: "★★★★★",
		7:   "★★★★★",
	}
	for rating, want := range tests {
		if got := stars(rating); got != want {
			t.Fatalf("stars(%v): expected %s got %s", rating, want, got)
		}
	}
}
