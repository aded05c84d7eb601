package response

import (
	"math"

	"movie-catalog/internal/data/entity"
)

type ReviewResponse struct {
	UserName    string  `json:"user_name"`
	AvatarEmoji string  `json:"avatar_emoji"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
}

type MovieReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converters
func ReviewToResponse(review entity.Review) ReviewResponse {
	return ReviewResponse{
		UserName:    review.UserName,
		AvatarEmoji: review.AvatarEmoji,
		Rating:      review.Rating,
		Comment:     review.Comment,
	}
}

func ReviewsToResponse(reviews []entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}

// ReviewStats averages ratings to one decimal place; no reviews gives zero.
func ReviewStats(reviews []entity.Review) MovieReviewStats {
	if len(reviews) == 0 {
		return MovieReviewStats{}
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}

	return MovieReviewStats{
		AverageRating: math.Round(sum/float64(len(reviews))*10) / 10,
		ReviewCount:   int64(len(reviews)),
	}
}
