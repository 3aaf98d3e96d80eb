package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetUserID(t *testing.T) {
	j := New("test_secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := j.GetUserID(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestGetUserID_WrongSecret(t *testing.T) {
	j := New("secret_a", time.Minute)
	other := New("secret_b", time.Minute)

	token, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	_, err = other.GetUserID(context.Background(), token)
	assert.Error(t, err)
}

func TestGetUserID_Expired(t *testing.T) {
	j := New("test_secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	_, err = j.GetUserID(context.Background(), token)
	assert.Error(t, err)
}

func TestGetUserID_Garbage(t *testing.T) {
	j := New("test_secret", time.Minute)

	_, err := j.GetUserID(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("test_secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
