package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/services"
)

func TestRespondServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "duplicate email", err: services.ErrUserAlreadyExists, wantStatus: http.StatusConflict},
		{name: "bad credentials", err: services.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "book not found", err: services.ErrBookNotFound, wantStatus: http.StatusNotFound},
		{name: "chapter number taken", err: services.ErrChapterNumberTaken, wantStatus: http.StatusConflict},
		{name: "AI not configured", err: grok.ErrUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "AI timeout", err: grok.ErrTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "AI rate limited", err: grok.ErrRateLimited, wantStatus: http.StatusServiceUnavailable},
		{name: "AI quota exceeded", err: grok.ErrQuotaExceeded, wantStatus: http.StatusServiceUnavailable},
		{name: "AI authentication failure", err: grok.ErrAuthentication, wantStatus: http.StatusServiceUnavailable},
		{name: "AI upstream failure", err: grok.ErrUpstream, wantStatus: http.StatusServiceUnavailable},
		{name: "wrapped AI upstream failure", err: fmt.Errorf("%w: status 500", grok.ErrUpstream), wantStatus: http.StatusServiceUnavailable},
		{name: "unrecognized error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			respondServiceError(rr, tt.err)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRespondServiceError_UpstreamMessageIsGeneric(t *testing.T) {
	rr := httptest.NewRecorder()
	respondServiceError(rr, fmt.Errorf("%w: invalid api key", grok.ErrAuthentication))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "AI service is temporarily unavailable")
	assert.NotContains(t, rr.Body.String(), "invalid api key")
}
