package loader

import (
	"context"
	"fmt"

	"movie-catalog/pkg/database"

	"github.com/goccy/go-json"
)

const (
	selectMovieEntries = `
		SELECT payload::text
		FROM catalog_movies
		ORDER BY position
	`

	selectReviewGroups = `
		SELECT movie_id::text, json_agg(payload ORDER BY position)::text
		FROM catalog_reviews
		GROUP BY movie_id
	`
)

// PostgresSource reads the same definitions from two staging tables whose
// payload column holds one JSON object per entry.
type PostgresSource struct {
	db database.PgxIface
}

func NewPostgresSource(db database.PgxIface) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) MovieEntries(ctx context.Context) ([]json.RawMessage, error) {
	rows, err := s.db.Query(ctx, selectMovieEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: query catalog_movies: %w", ErrResourceUnavailable, err)
	}
	defer rows.Close()

	var entries []json.RawMessage
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: scan catalog_movies: %w", ErrResourceUnavailable, err)
		}
		entries = append(entries, json.RawMessage(payload))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate catalog_movies: %w", ErrResourceUnavailable, err)
	}

	return entries, nil
}

func (s *PostgresSource) ReviewGroups(ctx context.Context) (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(ctx, selectReviewGroups)
	if err != nil {
		return nil, fmt.Errorf("%w: query catalog_reviews: %w", ErrResourceUnavailable, err)
	}
	defer rows.Close()

	groups := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, payload string
		if err := rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("%w: scan catalog_reviews: %w", ErrResourceUnavailable, err)
		}
		groups[key] = json.RawMessage(payload)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate catalog_reviews: %w", ErrResourceUnavailable, err)
	}

	return groups, nil
}
