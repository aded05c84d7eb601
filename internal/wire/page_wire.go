package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePage(r chi.Router, pageHandler *adaptor.PageHandler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/movies", http.StatusFound)
	})

	r.Get("/movies", pageHandler.Movies)
	r.Get("/movies/search", pageHandler.Search)
	r.Get("/movies/{id}/details", pageHandler.Details)
}
