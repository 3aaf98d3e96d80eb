package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/middlewares"
	"github.com/fabula-app/fabula/internal/services"
	"github.com/google/uuid"
)

// Response is the envelope every endpoint answers with.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Human-readable outcome message
	Message string `json:"message,omitempty"`

	// Payload on success
	Data any `json:"data,omitempty"`

	// Error description on failure
	Error string `json:"error,omitempty"`

	// Field-level validation errors
	Errors []string `json:"errors,omitempty"`
}

func respond(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	respond(w, status, Response{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, Response{Success: false, Message: message, Error: message})
}

func respondValidation(w http.ResponseWriter, errs []string) {
	respond(w, http.StatusBadRequest, Response{Success: false, Message: "Validation failed", Errors: errs})
}

// respondServiceError translates service and AI client errors into HTTP
// status codes. Anything unrecognized is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		respondError(w, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, services.ErrUserDoesNotExist),
		errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrWrongPassword):
		respondError(w, http.StatusUnauthorized, "Current password is incorrect")
	case errors.Is(err, services.ErrBookNotFound):
		respondError(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, services.ErrChapterNotFound):
		respondError(w, http.StatusNotFound, "Chapter not found")
	case errors.Is(err, services.ErrSuggestionNotFound):
		respondError(w, http.StatusNotFound, "Suggestion not found")
	case errors.Is(err, services.ErrChapterNumberTaken):
		respondError(w, http.StatusConflict, "Chapter number already exists in this book")
	case errors.Is(err, services.ErrEmptyContent):
		respondError(w, http.StatusBadRequest, "Chapter has no content")
	case errors.Is(err, services.ErrNoChapters):
		respondError(w, http.StatusBadRequest, "Book has no chapters to summarize")
	case errors.Is(err, services.ErrBatchEmpty),
		errors.Is(err, services.ErrBatchTooLarge):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, grok.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, "AI service is not configured")
	case errors.Is(err, grok.ErrTimeout):
		respondError(w, http.StatusGatewayTimeout, "AI service request timed out")
	case errors.Is(err, grok.ErrRateLimited),
		errors.Is(err, grok.ErrQuotaExceeded),
		errors.Is(err, grok.ErrAuthentication),
		errors.Is(err, grok.ErrUpstream):
		// The specific upstream cause stays in the logs; callers only
		// see that the AI service is down.
		logger.Log.Warnw("upstream AI failure", "err", err)
		respondError(w, http.StatusServiceUnavailable, "AI service is temporarily unavailable")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requestUserID pulls the authenticated user from the request context.
// A missing user means the auth middleware did not run; answer 401.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a chi URL parameter as a UUID and answers 404 on garbage,
// matching the not-found behavior for well-formed but unknown ids.
func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusNotFound, label+" not found")
		return uuid.Nil, false
	}
	return id, true
}
