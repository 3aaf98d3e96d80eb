package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fabula-app/fabula/internal/middlewares"
	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/services"
)

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(mockSvc)

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
		wantOK     bool
	}{
		{
			name: "successful registration",
			body: `{"email":"Jane@Example.com","password":"Secret123"}`,
			setup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "jane@example.com", "Secret123", gomock.Nil(), gomock.Nil()).
					Return(&models.UserDB{UserID: uuid.New(), Email: "jane@example.com"}, "token123", nil)
			},
			wantStatus: http.StatusCreated,
			wantOK:     true,
		},
		{
			name: "duplicate email",
			body: `{"email":"jane@example.com","password":"Secret123"}`,
			setup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "jane@example.com", "Secret123", gomock.Nil(), gomock.Nil()).
					Return(nil, "", services.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid JSON body",
			body:       `{"email":`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email and short password",
			body:       `{"email":"not-an-email","password":"short"}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeResponse(t, rr)
			assert.Equal(t, tt.wantOK, resp.Success)
		})
	}
}

func TestRegisterHandler_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRegisterHandler(NewMockRegisterer(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{"email":"bad","password":"x"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeResponse(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotEmpty(t, resp.Errors)
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)
	handler := NewLoginHandler(mockSvc)

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
	}{
		{
			name: "successful login",
			body: `{"email":"jane@example.com","password":"Secret123"}`,
			setup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "jane@example.com", "Secret123").
					Return(&models.UserDB{Email: "jane@example.com"}, "token123", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"jane@example.com","password":"wrong"}`,
			setup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "jane@example.com", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown user",
			body: `{"email":"nobody@example.com","password":"Secret123"}`,
			setup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "nobody@example.com", "Secret123").
					Return(nil, "", services.ErrUserDoesNotExist)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{"email":"","password":""}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	handler := NewProfileHandler(mockSvc)
	userID := uuid.New()

	t.Run("returns the caller's profile", func(t *testing.T) {
		mockSvc.EXPECT().
			GetProfile(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "jane@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)
	})

	t.Run("rejects an unauthenticated request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordChanger(ctrl)
	handler := NewChangePasswordHandler(mockSvc)
	userID := uuid.New()

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/api/auth/password", bytes.NewBufferString(body))
		return req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	}

	t.Run("successful change", func(t *testing.T) {
		mockSvc.EXPECT().
			ChangePassword(gomock.Any(), userID, "Current123", "NewSecret123").
			Return(nil)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"currentPassword":"Current123","newPassword":"NewSecret123"}`))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockSvc.EXPECT().
			ChangePassword(gomock.Any(), userID, "Wrong123", "NewSecret123").
			Return(services.ErrWrongPassword)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"currentPassword":"Wrong123","newPassword":"NewSecret123"}`))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("weak new password", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"currentPassword":"Current123","newPassword":"x"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
