package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"overlaysnow/internal/config"
	"overlaysnow/internal/http/handlers"
	"overlaysnow/internal/repos"
)

// newTestApp stands up the production route table over a fresh in-memory
// database seeded with the demo catalog and users.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	// a second pooled connection would see a fresh empty :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Minute,
	}
	app := fiber.New()
	handlers.NewDeps(db, cfg).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// login returns a bearer token for one of the seeded users.
func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": email, "password": "Passw0rd!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}
