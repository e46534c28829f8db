package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnavarrocarter/rest-bundle/internal/api"
	"github.com/mnavarrocarter/rest-bundle/internal/config"
	"github.com/mnavarrocarter/rest-bundle/internal/domain"
	"github.com/mnavarrocarter/rest-bundle/internal/mocks"
	"github.com/mnavarrocarter/rest-bundle/internal/service/auth"
)

func newAuthTestRouter(t *testing.T) (*mocks.MockUserStore, chi.Router) {
	t.Helper()

	users := mocks.NewMockUserStore()
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-thirty-two-characters!!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	handler := api.NewAuthHandler(users, jwtService, auth.NewBcryptVerifier(), nil)
	router := chi.NewRouter()
	router.Post("/api/auth/register", handler.Register)
	router.Post("/api/auth/login", handler.Login)
	return users, router
}

func postJSON(t *testing.T, router chi.Router, url string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRegister(t *testing.T) {
	t.Parallel()

	_, router := newAuthTestRouter(t)
	rec, body := postJSON(t, router, "/api/auth/register", api.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "a-long-enough-password",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, body["user_id"])
	assert.NotEmpty(t, body["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	users, router := newAuthTestRouter(t)
	existing, err := domain.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	users.Add(existing)

	rec, body := postJSON(t, router, "/api/auth/register", api.RegisterRequest{
		Name:     "Ada Again",
		Email:    "ada@example.com",
		Password: "a-long-enough-password",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	_, router := newAuthTestRouter(t)

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{"missing name", api.RegisterRequest{Email: "a@example.com", Password: "a-long-enough-password"}},
		{"bad email", api.RegisterRequest{Name: "Ada", Email: "nope", Password: "a-long-enough-password"}},
		{"short password", api.RegisterRequest{Name: "Ada", Email: "a@example.com", Password: "short"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, _ := postJSON(t, router, "/api/auth/register", tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	users, router := newAuthTestRouter(t)
	hashed, err := auth.HashPassword("a-long-enough-password")
	require.NoError(t, err)
	user, err := domain.NewUser("Ada", "ada@example.com", hashed)
	require.NoError(t, err)
	users.Add(user)

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		rec, body := postJSON(t, router, "/api/auth/login", api.LoginRequest{
			Email:    "ada@example.com",
			Password: "a-long-enough-password",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID.String(), body["user_id"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		rec, body := postJSON(t, router, "/api/auth/login", api.LoginRequest{
			Email:    "ada@example.com",
			Password: "not-the-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		rec, body := postJSON(t, router, "/api/auth/login", api.LoginRequest{
			Email:    "ghost@example.com",
			Password: "a-long-enough-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", body["error"])
	})
}
