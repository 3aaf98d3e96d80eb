package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/validation"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string, firstName, lastName *string) (*models.UserDB, string, error)
}

// Authenticator defines the interface for credential login.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// ProfileGetter defines the interface for reading the caller's profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater defines the interface for updating the caller's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName *string) (*models.UserDB, error)
}

// PasswordChanger defines the interface for changing the caller's password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// TokenRefresher defines the interface for issuing a fresh token.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, userID uuid.UUID) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: Secret123
	Password string `json:"password"`

	// First name
	FirstName *string `json:"firstName"`

	// Last name
	LastName *string `json:"lastName"`
}

// AuthData is the payload returned after registration or login.
// swagger:model AuthData
type AuthData struct {
	User  *models.UserDB `json:"user"`
	Token string         `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.Response "User successfully registered"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 409 {object} handlers.Response "Email already registered"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		var errs []string
		if res := validation.Email(req.Email); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
		if res := validation.Password(req.Password); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
		if req.FirstName != nil {
			if res := validation.Name(*req.FirstName, "First name"); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.LastName != nil {
			if res := validation.Name(*req.LastName, "Last name"); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if len(errs) > 0 {
			respondValidation(w, errs)
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusCreated, "User registered successfully", AuthData{User: user, Token: token})
	}
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for credential login.
// @Summary Log in
// @Description Authenticates a user by email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.Response "Login successful"
// @Failure 401 {object} handlers.Response "Invalid credentials"
// @Router /auth/login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Email == "" || req.Password == "" {
			respondValidation(w, []string{"Email and password are required"})
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Login successful", AuthData{User: user, Token: token})
	}
}

// NewProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Profile"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Router /auth/profile [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", user)
	}
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's
// name fields.
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update"
// @Success 200 {object} handlers.Response "Updated profile"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Router /auth/profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var errs []string
		if req.FirstName != nil {
			if res := validation.Name(*req.FirstName, "First name"); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.LastName != nil {
			if res := validation.Name(*req.LastName, "Last name"); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if len(errs) > 0 {
			respondValidation(w, errs)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, req.FirstName, req.LastName)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Profile updated successfully", user)
	}
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"currentPassword"`

	// New password
	// required: true
	NewPassword string `json:"newPassword"`
}

// NewChangePasswordHandler returns an HTTP handler for changing the caller's
// password.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change"
// @Success 200 {object} handlers.Response "Password changed"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 401 {object} handlers.Response "Wrong current password"
// @Router /auth/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.CurrentPassword == "" {
			respondValidation(w, []string{"Current password is required"})
			return
		}
		if res := validation.Password(req.NewPassword); !res.IsValid {
			respondValidation(w, res.Errors)
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Password changed successfully", nil)
	}
}

// NewRefreshTokenHandler returns an HTTP handler that issues a fresh token
// for an authenticated caller.
// @Summary Refresh JWT token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "New token"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Router /auth/refresh [post]
func NewRefreshTokenHandler(svc TokenRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		token, err := svc.RefreshToken(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Token refreshed", map[string]string{"token": token})
	}
}
