package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndMe(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name": "Frida", "email": "frida@example.com", "password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reg struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &reg)
	assert.Equal(t, "bearer", reg.TokenType)
	assert.Equal(t, "USER", reg.User.Role)

	// duplicate email is a stable error kind
	resp = doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name": "Frida Again", "email": "frida@example.com", "password": "Sup3rSecret",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var er struct {
		Error string `json:"error"`
	}
	decode(t, resp, &er)
	assert.Equal(t, "EMAIL_TAKEN", er.Error)

	// the fresh token authenticates /me
	resp = doJSON(t, app, "GET", "/api/auth/me", reg.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Email string `json:"email"`
	}
	decode(t, resp, &me)
	assert.Equal(t, "frida@example.com", me.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "demo@overlaysnow.test", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "nobody@overlaysnow.test", "password": "Passw0rd!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/cart/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/cart/", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesNeedAdminRole(t *testing.T) {
	app := newTestApp(t)
	userTok := login(t, app, "demo@overlaysnow.test")
	adminTok := login(t, app, "admin@overlaysnow.test")

	resp := doJSON(t, app, "GET", "/api/admin/orders", userTok, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	var er struct {
		Error string `json:"error"`
	}
	decode(t, resp, &er)
	assert.Equal(t, "FORBIDDEN", er.Error)

	resp = doJSON(t, app, "GET", "/api/admin/orders", adminTok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
