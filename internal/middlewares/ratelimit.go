package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/fabula-app/fabula/internal/logger"
)

// Rate limiters use fixed time-window counters held in process memory:
// limits reset on restart and are not shared across instances.

// userOrIPKey keys the counter by authenticated user id, falling back to
// the client IP for unauthenticated requests.
func userOrIPKey(r *http.Request) (string, error) {
	if userID, ok := GetUserIDFromContext(r.Context()); ok {
		return userID.String(), nil
	}
	return httprate.KeyByIP(r)
}

func limitHandler(message string, retryAfter int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Warnw("rate limit exceeded", "uri", r.RequestURI, "remote", r.RemoteAddr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"success":false,"message":"` + message + `","retryAfter":` + strconv.Itoa(retryAfter) + `}`))
	}
}

// DefaultRateLimiter limits general API traffic per user (or IP).
func DefaultRateLimiter(max int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(max, window,
		httprate.WithKeyFuncs(userOrIPKey),
		httprate.WithLimitHandler(limitHandler("Too many requests. Please try again later.", int(window.Seconds()))),
	)
}

// AuthRateLimiter limits credential endpoints strictly, keyed by IP only.
func AuthRateLimiter() func(http.Handler) http.Handler {
	const window = 15 * time.Minute
	return httprate.Limit(5, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(limitHandler("Too many authentication attempts. Please try again later.", int(window.Seconds()))),
	)
}

// AIRateLimiter limits generation endpoints per user.
func AIRateLimiter() func(http.Handler) http.Handler {
	const window = 15 * time.Minute
	return httprate.Limit(50, window,
		httprate.WithKeyFuncs(userOrIPKey),
		httprate.WithLimitHandler(limitHandler("Too many AI requests. Please try again later.", int(window.Seconds()))),
	)
}
