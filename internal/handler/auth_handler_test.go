package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"quill/internal/domain"
	"quill/internal/dto"
	"quill/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	profile *dto.UserProfileResponse
	tokens  *dto.TokenResponse
	claims  *dto.AuthClaims
	err     error
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfileResponse, error) {
	return s.profile, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	return s.claims, s.err
}

func (s *stubAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	return "", s.err
}

func newAuthTestApp(h *AuthHandler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/refresh", h.Refresh)
	return app
}

func TestRegisterHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{profile: &dto.UserProfileResponse{
		ID: "user-1", Name: "Ada", Email: "ada@example.com",
	}})
	app := newAuthTestApp(h)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "longenough",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.UserProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-1", body.ID)
}

func TestRegisterHandler_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	app := newAuthTestApp(h)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Ada",
		Email:    "not-an-email",
		Password: "short",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.NewDuplicateEmailError("ada@example.com")})
	app := newAuthTestApp(h)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "longenough",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{tokens: &dto.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}})
	app := newAuthTestApp(h)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "longenough",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "access", body.AccessToken)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.NewInvalidCredentialsError()})
	app := newAuthTestApp(h)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshHandler_MissingToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	app := newAuthTestApp(h)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/refresh", dto.RefreshTokenRequest{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
