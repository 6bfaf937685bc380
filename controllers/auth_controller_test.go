package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	register := map[string]string{
		"email":    "new@example.com",
		"password": "supersecret",
		"name":     "Newcomer",
	}

	resp := doRequest(t, app, http.MethodPost, "/auth/register", "", register)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.AccessToken)
	require.NotEmpty(t, created.RefreshToken)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/auth/register", "", register)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("short password rejected", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/auth/register", "", map[string]string{
			"email":    "short@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login with wrong password fails", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "new@example.com",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("login returns tokens", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "new@example.com",
			"password": "supersecret",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var login struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		decodeBody(t, resp, &login)
		assert.NotEmpty(t, login.AccessToken)
		assert.Equal(t, "new@example.com", login.User.Email)
	})

	t.Run("me returns the authenticated user", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/auth/me", "Bearer "+created.AccessToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			Email string `json:"email"`
		}
		decodeBody(t, resp, &me)
		assert.Equal(t, "new@example.com", me.Email)
	})

	t.Run("refresh issues a new pair", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/auth/refresh", "", map[string]string{
			"refresh_token": created.RefreshToken,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var refreshed struct {
			AccessToken string `json:"access_token"`
		}
		decodeBody(t, resp, &refreshed)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/auth/me", "Bearer not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogoutInvalidatesTokens(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "leaver@example.com", "Leaver")
	auth := bearerToken(t, user)

	resp := doRequest(t, app, http.MethodPost, "/auth/logout", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Token version bumped; the old token no longer works
	resp = doRequest(t, app, http.MethodGet, "/auth/me", auth, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
