package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string, firstName, lastName *string) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName *string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login, and account self-service.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns it along with a fresh token.
// Registering an already-used email fails with ErrUserAlreadyExists and
// never creates a second record.
func (svc *AuthService) Register(ctx context.Context, email, password string, firstName, lastName *string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	userID, err := svc.writer.Save(ctx, email, string(hashedPassword), firstName, lastName)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load created user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it along with a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the user's own record.
func (svc *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// UpdateProfile updates the user's optional name fields.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName *string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if err := svc.writer.UpdateProfile(ctx, userID, firstName, lastName); err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	return user, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		logger.Log.Errorw("wrong current password", "userID", userID)
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashedPassword))
}

// RefreshToken issues a fresh token for an existing user.
func (svc *AuthService) RefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserDoesNotExist
	}
	return svc.jwt.Generate(ctx, userID)
}
