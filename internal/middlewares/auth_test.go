package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTokener struct {
	token    string
	tokenErr error
	userID   uuid.UUID
	idErr    error
}

func (f *fakeTokener) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeTokener) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	return f.userID, f.idErr
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes the user through", func(t *testing.T) {
		mw := AuthMiddleware(&fakeTokener{token: "token123", userID: userID})

		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		mw := AuthMiddleware(&fakeTokener{tokenErr: errors.New("no authorization header")})

		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		mw := AuthMiddleware(&fakeTokener{token: "bad", idErr: errors.New("token is not valid")})

		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("present", func(t *testing.T) {
		userID := uuid.New()
		ctx := SetUserIDToContext(context.Background(), userID)

		got, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, userID, got)
	})
}
