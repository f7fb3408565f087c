package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/auth/authtest"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/routes"
)

type testEnv struct {
	app    *fiber.App
	store  *authtest.MemStore
	mailer *authtest.MemMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := authtest.NewMemStore()
	mailer := &authtest.MemMailer{}
	svc := auth.NewService(store, mailer, "http://localhost:3000")

	m := middleware.NewAuth(svc)
	app := fiber.New()
	app.Use(m.Attach())
	routes.SetupAuthRoutes(app, controllers.NewAuthController(svc, false), controllers.NewProfileController(nil, nil), m)

	return &testEnv{app: app, store: store, mailer: mailer}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	return nil
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Alice",
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["user_id"])
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	env := newTestEnv(t)

	payload := fiber.Map{"email": "alice@example.com", "password": "password123", "name": "Alice"}
	resp := env.request(t, fiber.MethodPost, "/auth/register", payload, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = env.request(t, fiber.MethodPost, "/auth/register", payload, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "duplicate_email", body["kind"])
}

func TestRegisterEndpointShortPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email":    "alice@example.com",
		"password": "short77",
		"name":     "Alice",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginEndpointSetsCookie(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email": "alice@example.com", "password": "password123", "name": "Alice",
	}, "")

	resp := env.request(t, fiber.MethodPost, "/auth/login", fiber.Map{
		"email": "alice@example.com", "password": "password123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Len(t, cookie.Value, 64)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
}

func TestLoginEndpointInvalidCredentialsIndistinguishable(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email": "alice@example.com", "password": "password123", "name": "Alice",
	}, "")

	wrongPassword := env.request(t, fiber.MethodPost, "/auth/login", fiber.Map{
		"email": "alice@example.com", "password": "wrongpassword",
	}, "")
	unknownEmail := env.request(t, fiber.MethodPost, "/auth/login", fiber.Map{
		"email": "nobody@example.com", "password": "password123",
	}, "")

	assert.Equal(t, fiber.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknownEmail.StatusCode)
	assert.Equal(t, decode(t, wrongPassword), decode(t, unknownEmail))
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email": "alice@example.com", "password": "password123", "name": "Alice",
	}, "")
	resp := env.request(t, fiber.MethodPost, "/auth/login", fiber.Map{
		"email": "alice@example.com", "password": "password123",
	}, "")
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	resp = env.request(t, fiber.MethodGet, "/auth/me", nil,
		fmt.Sprintf("%s=%s", auth.SessionCookie, cookie.Value))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "user", body["role"])
}

func TestMeEndpointAnonymous(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodGet, "/auth/me", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "null", string(bytes.TrimSpace(raw)))
}

func TestVerifyEmailEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email": "alice@example.com", "password": "password123", "name": "Alice",
	}, "")
	code := env.store.VerificationTokenFor(1)
	require.Len(t, code, 6)

	resp := env.request(t, fiber.MethodPost, "/auth/verify-email", fiber.Map{
		"user_id": 1, "token": code,
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.store.User(1).EmailVerified)

	// Consumed token fails on the second submit
	resp = env.request(t, fiber.MethodPost, "/auth/verify-email", fiber.Map{
		"user_id": 1, "token": code,
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_token", decode(t, resp)["kind"])
}

func TestLogoutEndpointClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	env.request(t, fiber.MethodPost, "/auth/register", fiber.Map{
		"email": "alice@example.com", "password": "password123", "name": "Alice",
	}, "")
	login := env.request(t, fiber.MethodPost, "/auth/login", fiber.Map{
		"email": "alice@example.com", "password": "password123",
	}, "")
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	resp := env.request(t, fiber.MethodPost, "/auth/logout", nil,
		fmt.Sprintf("%s=%s", auth.SessionCookie, cookie.Value))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, 0, env.store.SessionCount())

	// The old token no longer authenticates
	resp = env.request(t, fiber.MethodGet, "/auth/me", nil,
		fmt.Sprintf("%s=%s", auth.SessionCookie, cookie.Value))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "null", string(bytes.TrimSpace(raw)))
}

// Logout without a cookie still succeeds and clears the cookie.
func TestLogoutEndpointWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, fiber.MethodPost, "/auth/logout", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, sessionCookie(resp))
}
