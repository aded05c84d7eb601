package search

import (
	"strings"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// Catalog is the read side of the catalog index the engine queries.
type Catalog interface {
	FindAll() []entity.Movie
	FindByID(id int64) (entity.Movie, bool)
}

// Engine evaluates criteria against an immutable catalog. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	catalog Catalog
	log     *zap.Logger
}

func NewEngine(catalog Catalog, log *zap.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		log:     log.With(zap.String("component", "search")),
	}
}

// Search returns, in catalog order, every movie satisfying all constraints in c.
func (e *Engine) Search(c Criteria) []entity.Movie {
	name, byName := c.Name.needle()
	genre, byGenre := c.Genre.needle()

	matches := func(m entity.Movie) bool {
		if byName && !containsFold(m.MovieName, name) {
			return false
		}
		if byGenre && !containsFold(m.Genre, genre) {
			return false
		}
		return true
	}

	results := []entity.Movie{}
	if c.ID != nil {
		// At most one record can carry the id, so the index replaces the scan.
		if m, ok := e.catalog.FindByID(*c.ID); ok && matches(m) {
			results = append(results, m)
		}
	} else {
		for _, m := range e.catalog.FindAll() {
			if matches(m) {
				results = append(results, m)
			}
		}
	}

	e.log.Debug("Search evaluated",
		zap.Stringer("name", c.Name.State()),
		zap.Int64p("id", c.ID),
		zap.Stringer("genre", c.Genre.State()),
		zap.Bool("constrained", c.Constrained()),
		zap.Int("results", len(results)),
	)

	return results
}

// SearchByName matches on title only. Unlike Search, an absent or blank name
// yields no results instead of the whole catalog.
func (e *Engine) SearchByName(name Text) []entity.Movie {
	if name.State() != StateSignificant {
		return []entity.Movie{}
	}
	return e.Search(Criteria{Name: name})
}

// SearchByGenre matches on genre only, with the same blank handling as SearchByName.
func (e *Engine) SearchByGenre(genre Text) []entity.Movie {
	if genre.State() != StateSignificant {
		return []entity.Movie{}
	}
	return e.Search(Criteria{Genre: genre})
}

// containsFold reports whether needle, already lower-cased, occurs in s ignoring case.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
