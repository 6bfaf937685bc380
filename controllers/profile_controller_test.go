package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/models"
)

func TestProfileUpdate(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "profile@example.com", "Original Name")
	auth := bearerToken(t, user)

	resp := doRequest(t, app, http.MethodPut, "/profile", auth, map[string]interface{}{
		"name":      "Updated Name",
		"bio":       "I build things",
		"skills":    []string{"go", "sql"},
		"githubUrl": "https://github.com/someone",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.NotNil(t, reloaded.Name)
	assert.Equal(t, "Updated Name", *reloaded.Name)
	require.NotNil(t, reloaded.Bio)
	assert.Equal(t, "I build things", *reloaded.Bio)
	assert.Equal(t, []string{"go", "sql"}, reloaded.Skills)
	require.NotNil(t, reloaded.GithubURL)

	t.Run("empty url clears the link", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, "/profile", auth, map[string]interface{}{
			"githubUrl": "",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cleared models.User
		require.NoError(t, db.First(&cleared, user.ID).Error)
		assert.Nil(t, cleared.GithubURL)
	})

	t.Run("invalid url rejected", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, "/profile", auth, map[string]interface{}{
			"websiteUrl": "not a url",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("get reflects the update", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/profile", auth, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile struct {
			Data struct {
				Name   *string  `json:"name"`
				Email  string   `json:"email"`
				Skills []string `json:"skills"`
			} `json:"data"`
		}
		decodeBody(t, resp, &profile)
		require.NotNil(t, profile.Data.Name)
		assert.Equal(t, "Updated Name", *profile.Data.Name)
		assert.Equal(t, "profile@example.com", profile.Data.Email)
		assert.Equal(t, []string{"go", "sql"}, profile.Data.Skills)
	})
}
