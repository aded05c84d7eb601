package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Source provides raw catalog definitions. Movie entries keep source order;
// review groups are keyed by the movie id rendered as a string.
type Source interface {
	MovieEntries(ctx context.Context) ([]json.RawMessage, error)
	ReviewGroups(ctx context.Context) (map[string]json.RawMessage, error)
}

// FileSource reads the movie array and the review object from JSON files.
type FileSource struct {
	MoviesPath  string
	ReviewsPath string
}

func NewFileSource(moviesPath, reviewsPath string) *FileSource {
	return &FileSource{MoviesPath: moviesPath, ReviewsPath: reviewsPath}
}

func (s *FileSource) MovieEntries(_ context.Context) ([]json.RawMessage, error) {
	data, err := readResource(s.MoviesPath)
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrResourceUnavailable, s.MoviesPath, err)
	}
	return entries, nil
}

func (s *FileSource) ReviewGroups(_ context.Context) (map[string]json.RawMessage, error) {
	data, err := readResource(s.ReviewsPath)
	if err != nil {
		return nil, err
	}

	var groups map[string]json.RawMessage
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrResourceUnavailable, s.ReviewsPath, err)
	}
	return groups, nil
}

func readResource(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrResourceUnavailable)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrResourceUnavailable, path, err)
	}
	return data, nil
}

type unavailableSource struct {
	err error
}

// UnavailableSource reports every resource as unavailable because of err.
// Loading from it yields an empty catalog with one diagnostic per resource.
func UnavailableSource(err error) Source {
	return unavailableSource{err: err}
}

func (s unavailableSource) MovieEntries(_ context.Context) ([]json.RawMessage, error) {
	return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, s.err)
}

func (s unavailableSource) ReviewGroups(_ context.Context) (map[string]json.RawMessage, error) {
	return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, s.err)
}
