package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("database up, AI up, no cache configured", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		ai := NewMockGrokInfo(ctrl)
		ai.EXPECT().Available().Return(true)

		handler := NewHealthHandler(db, nil, ai)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool       `json:"success"`
			Data    HealthData `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.True(t, resp.Data.Database)
		assert.False(t, resp.Data.Cache)
		assert.Equal(t, "degraded", resp.Data.Status)
	})

	t.Run("database down answers 503", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		ai := NewMockGrokInfo(ctrl)
		ai.EXPECT().Available().Return(true)

		handler := NewHealthHandler(db, nil, ai)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

		var resp struct {
			Data HealthData `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Data.Database)
		assert.Equal(t, "unhealthy", resp.Data.Status)
	})
}
