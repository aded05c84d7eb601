package middleware

import (
	"net/http"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to requests per window. A disabled limiter,
// or one configured with a non-positive limit, passes every request through.
func RateLimit(requests int, window time.Duration, disabled bool) func(http.Handler) http.Handler {
	if disabled || requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseTooManyRequests(w, "Too many requests, please slow down")
		}),
	)
}
