package grok

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.WriteHeader(status)
		if status >= 200 && status <= 299 {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": content}},
				},
			})
		}
	}))
}

func TestCall_NoCredentialFailsFast(t *testing.T) {
	// Point at an unroutable URL: no credential must mean no network call.
	c := NewClient(Config{APIURL: "http://127.0.0.1:1/unreachable"})

	_, err := c.call(context.Background(), []message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, c.Available())
}

func TestCall_Success(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "  Once upon a time  ")
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
	got, err := c.call(context.Background(), []message{{Role: "user", Content: "hi"}})
	assert.NoError(t, err)
	assert.Equal(t, "Once upon a time", got)
}

func TestCall_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "authentication failure", status: http.StatusUnauthorized, wantErr: ErrAuthentication},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "quota exceeded", status: http.StatusPaymentRequired, wantErr: ErrQuotaExceeded},
		{name: "generic upstream", status: http.StatusInternalServerError, wantErr: ErrUpstream},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, "")
			defer srv.Close()

			c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
			_, err := c.call(context.Background(), []message{{Role: "user", Content: "hi"}})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCall_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
	_, err := c.call(context.Background(), []message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestOperations_FailFastWithoutCredential(t *testing.T) {
	c := NewClient(Config{})
	ctx := context.Background()

	_, err := c.EnhanceContent(ctx, "Title", "content", EnhanceContext{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.IntegrateThought(ctx, "content", "thought", IntegrateContext{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.SummarizeContent(ctx, "content", SummaryContext{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.GenerateChapter(ctx, "Title", "outline", GenerateContext{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.GenerateBookSummary(ctx, nil, BookInfo{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.AnalyzeWriting(ctx, "content", AnalyzeContext{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Chat(ctx, "hi", "en", "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEnhanceContent(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "An enhanced tale of wonder and dialogue that the reader should consider carefully.")
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
	res, err := c.EnhanceContent(context.Background(), "Chapter One", "A tale.", EnhanceContext{
		BookTitle: "My Book",
		Genre:     "fantasy",
		Language:  "en",
	})
	assert.NoError(t, err)
	assert.Equal(t, 13, res.WordCount)
	assert.NotEmpty(t, res.Suggestions)
}

func TestGenerateChapter_ReadingTime(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "one two three four five")
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
	res, err := c.GenerateChapter(context.Background(), "Title", "outline", GenerateContext{})
	assert.NoError(t, err)
	assert.Equal(t, 5, res.WordCount)
	assert.Equal(t, 1, res.EstimatedReadingTime)
}

func TestGenerateBookSummary_TotalsWords(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "A sweeping saga.")
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
	res, err := c.GenerateBookSummary(context.Background(), []ChapterInput{
		{Number: 1, Title: "One", Content: "a b c", WordCount: 3},
		{Number: 2, Title: "Two", Content: "d e", WordCount: 2},
	}, BookInfo{Title: "Saga"})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.ChapterCount)
	assert.Equal(t, 5, res.TotalWords)
	assert.Equal(t, "Saga", res.BookTitle)
}

func TestSummarizeContent_WordCounts(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "Short summary.")
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
	res, err := c.SummarizeContent(context.Background(), "one two three four", SummaryContext{Length: "short"})
	assert.NoError(t, err)
	assert.Equal(t, 4, res.OriginalWordCount)
	assert.Equal(t, 2, res.SummaryWordCount)
}

func TestTestConnection(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		c := NewClient(Config{})
		status := c.TestConnection(context.Background())
		assert.False(t, status.Success)
		assert.Equal(t, "API key not configured", status.Error)
	})

	t.Run("reachable", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, "Grok API is working!")
		defer srv.Close()

		c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
		status := c.TestConnection(context.Background())
		assert.True(t, status.Success)
		assert.Equal(t, "Grok API is working!", status.Message)
		assert.Equal(t, defaultModel, status.Model)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := newTestServer(t, http.StatusInternalServerError, "")
		defer srv.Close()

		c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
		status := c.TestConnection(context.Background())
		assert.False(t, status.Success)
		assert.NotEmpty(t, status.Error)
	})
}

func TestErrorsAreDistinguishable(t *testing.T) {
	assert.False(t, errors.Is(ErrRateLimited, ErrUpstream))
	assert.False(t, errors.Is(ErrUnavailable, ErrUpstream))
}
