package response

import (
	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"
)

type MovieResponse struct {
	ID          int64   `json:"id"`
	MovieName   string  `json:"movie_name"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	ImdbRating  float64 `json:"imdb_rating"`
	Icon        string  `json:"icon"`
}

type MovieDetailResponse struct {
	MovieResponse
	Reviews     []ReviewResponse `json:"reviews"`
	ReviewStats MovieReviewStats `json:"review_stats"`
}

// Helper converters
func MovieToResponse(movie entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		MovieName:   movie.MovieName,
		Director:    movie.Director,
		Year:        movie.Year,
		Genre:       movie.Genre,
		Description: movie.Description,
		Duration:    movie.Duration,
		ImdbRating:  movie.ImdbRating,
		Icon:        utils.MovieIcon(movie.MovieName),
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}

func MovieToDetailResponse(movie entity.Movie, reviews []entity.Review) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Reviews:       ReviewsToResponse(reviews),
		ReviewStats:   ReviewStats(reviews),
	}
}
