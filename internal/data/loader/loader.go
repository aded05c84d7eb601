package loader

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/metrics"
	"movie-catalog/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Result is the outcome of a load. Diagnostics lists everything that was skipped;
// a non-empty list with a usable catalog is a partial load, not a failure.
type Result struct {
	Movies      []entity.Movie
	Reviews     map[int64][]entity.Review
	Diagnostics []Diagnostic
}

// ReviewCount is the number of reviews across all groups.
func (r *Result) ReviewCount() int {
	n := 0
	for _, group := range r.Reviews {
		n += len(group)
	}
	return n
}

// Partial reports whether anything was skipped.
func (r *Result) Partial() bool {
	return len(r.Diagnostics) > 0
}

type movieRecord struct {
	ID          *int64   `json:"id" validate:"required,gt=0"`
	MovieName   *string  `json:"movieName" validate:"required"`
	Director    *string  `json:"director" validate:"required"`
	Year        *int     `json:"year" validate:"required"`
	Genre       *string  `json:"genre" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Duration    *int     `json:"duration" validate:"required"`
	ImdbRating  *float64 `json:"imdbRating" validate:"required"`
}

type reviewRecord struct {
	UserName    *string  `json:"userName" validate:"required"`
	AvatarEmoji *string  `json:"avatarEmoji" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
	Comment     *string  `json:"comment" validate:"required"`
}

var (
	movieFields  = jsonFields(movieRecord{})
	reviewFields = jsonFields(reviewRecord{})
)

type loader struct {
	log    *zap.Logger
	result *Result
}

// Load reads every entry from src once. It never fails: unavailable resources
// leave the matching structure empty and bad entries are dropped, each with a
// Diagnostic logged at warn level.
func Load(ctx context.Context, src Source, log *zap.Logger) *Result {
	l := &loader{
		log: log.With(zap.String("component", "loader")),
		result: &Result{
			Movies:  []entity.Movie{},
			Reviews: make(map[int64][]entity.Review),
		},
	}

	l.loadMovies(ctx, src)
	l.loadReviews(ctx, src)

	metrics.RecordCatalogLoad(len(l.result.Movies), l.result.ReviewCount())

	l.log.Info("Catalog loaded",
		zap.Int("movies", len(l.result.Movies)),
		zap.Int("review_groups", len(l.result.Reviews)),
		zap.Int("reviews", l.result.ReviewCount()),
		zap.Int("skipped", len(l.result.Diagnostics)),
	)

	return l.result
}

func (l *loader) loadMovies(ctx context.Context, src Source) {
	entries, err := src.MovieEntries(ctx)
	if err != nil {
		l.skip(Diagnostic{Resource: ResourceMovies, Index: -1, Err: err})
		return
	}

	seen := make(map[int64]int, len(entries))
	for i, raw := range entries {
		movie, err := decodeMovie(raw)
		if err != nil {
			l.skip(Diagnostic{Resource: ResourceMovies, Index: i, Err: err})
			continue
		}

		if first, dup := seen[movie.ID]; dup {
			l.skip(Diagnostic{
				Resource: ResourceMovies,
				Index:    i,
				Err:      fmt.Errorf("%w: %d already defined at index %d", ErrDuplicateID, movie.ID, first),
			})
			continue
		}

		seen[movie.ID] = i
		l.result.Movies = append(l.result.Movies, movie)
	}
}

func (l *loader) loadReviews(ctx context.Context, src Source) {
	groups, err := src.ReviewGroups(ctx)
	if err != nil {
		l.skip(Diagnostic{Resource: ResourceReviews, Index: -1, Err: err})
		return
	}

	// Sorted keys keep diagnostics and merge order deterministic.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		// Keys must be the canonical rendering of the id; "01" or "+1" would
		// otherwise merge into group 1.
		movieID, err := strconv.ParseInt(key, 10, 64)
		if err != nil || strconv.FormatInt(movieID, 10) != key {
			l.skip(Diagnostic{
				Resource: ResourceReviews,
				Index:    -1,
				Key:      key,
				Err:      fmt.Errorf("%w: group key is not a movie id", ErrMalformedRecord),
			})
			continue
		}

		var entries []json.RawMessage
		if err := json.Unmarshal(groups[key], &entries); err != nil {
			l.skip(Diagnostic{
				Resource: ResourceReviews,
				Index:    -1,
				Key:      key,
				Err:      fmt.Errorf("%w: group is not an array: %w", ErrMalformedRecord, err),
			})
			continue
		}

		for i, raw := range entries {
			review, err := decodeReview(movieID, raw)
			if err != nil {
				l.skip(Diagnostic{Resource: ResourceReviews, Index: i, Key: key, Err: err})
				continue
			}
			l.result.Reviews[movieID] = append(l.result.Reviews[movieID], review)
		}
	}
}

func (l *loader) skip(d Diagnostic) {
	l.result.Diagnostics = append(l.result.Diagnostics, d)
	metrics.RecordLoadSkipped(d.Resource)

	fields := []zap.Field{zap.String("resource", d.Resource), zap.Error(d.Err)}
	if d.Index >= 0 {
		fields = append(fields, zap.Int("index", d.Index))
	}
	if d.Key != "" {
		fields = append(fields, zap.String("key", d.Key))
	}
	l.log.Warn("Skipped catalog entry", fields...)
}

func decodeMovie(raw json.RawMessage) (entity.Movie, error) {
	var rec movieRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return entity.Movie{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if err := checkFieldCase(raw, movieFields); err != nil {
		return entity.Movie{}, err
	}

	if errs := utils.ValidateStruct(rec); len(errs) > 0 {
		return entity.Movie{}, fmt.Errorf("%w: %s", ErrMalformedRecord, utils.FormatValidationErrors(errs))
	}

	return entity.Movie{
		ID:          *rec.ID,
		MovieName:   *rec.MovieName,
		Director:    *rec.Director,
		Year:        *rec.Year,
		Genre:       *rec.Genre,
		Description: *rec.Description,
		Duration:    *rec.Duration,
		ImdbRating:  *rec.ImdbRating,
	}, nil
}

func decodeReview(movieID int64, raw json.RawMessage) (entity.Review, error) {
	var rec reviewRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return entity.Review{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if err := checkFieldCase(raw, reviewFields); err != nil {
		return entity.Review{}, err
	}

	if errs := utils.ValidateStruct(rec); len(errs) > 0 {
		return entity.Review{}, fmt.Errorf("%w: %s", ErrMalformedRecord, utils.FormatValidationErrors(errs))
	}

	return entity.Review{
		MovieID:     movieID,
		UserName:    *rec.UserName,
		AvatarEmoji: *rec.AvatarEmoji,
		Rating:      *rec.Rating,
		Comment:     *rec.Comment,
	}, nil
}

// checkFieldCase rejects keys that differ from a known field only by case.
// The decoder matches names case-insensitively, so "ID" would fill id.
func checkFieldCase(raw json.RawMessage, fields []string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, field := range fields {
			if key != field && strings.EqualFold(key, field) {
				return fmt.Errorf("%w: field %q must be spelled %q", ErrMalformedRecord, key, field)
			}
		}
	}
	return nil
}

func jsonFields(record any) []string {
	t := reflect.TypeOf(record)
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]; name != "" {
			fields = append(fields, name)
		}
	}
	return fields
}
