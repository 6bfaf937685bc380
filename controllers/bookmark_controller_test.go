package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/models"
)

func TestBookmarkToggle(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "reader@example.com", "Reader")
	auth := bearerToken(t, user)

	body := map[string]string{"resource_id": "awesome-go"}

	resp := doRequest(t, app, http.MethodPost, "/bookmarks", auth, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled struct {
		Bookmarked bool `json:"bookmarked"`
	}
	decodeBody(t, resp, &toggled)
	assert.True(t, toggled.Bookmarked)

	var count int64
	db.Model(&models.ResourceBookmark{}).
		Where("user_id = ? AND resource_id = ?", user.ID, "awesome-go").
		Count(&count)
	assert.EqualValues(t, 1, count)

	// Second call undoes the first
	resp = doRequest(t, app, http.MethodPost, "/bookmarks", auth, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &toggled)
	assert.False(t, toggled.Bookmarked)

	db.Model(&models.ResourceBookmark{}).
		Where("user_id = ? AND resource_id = ?", user.ID, "awesome-go").
		Count(&count)
	assert.Zero(t, count)
}

func TestBookmarkList(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "reader@example.com", "Reader")
	other := createTestUser(t, db, "other@example.com", "Other")
	auth := bearerToken(t, user)

	for _, id := range []string{"res-a", "res-b"} {
		resp := doRequest(t, app, http.MethodPost, "/bookmarks", auth, map[string]string{"resource_id": id})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := doRequest(t, app, http.MethodPost, "/bookmarks", bearerToken(t, other),
		map[string]string{"resource_id": "res-c"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/bookmarks", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Data []string `json:"data"`
	}
	decodeBody(t, resp, &listing)
	assert.ElementsMatch(t, []string{"res-a", "res-b"}, listing.Data)
}

func TestBookmarkValidation(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "reader@example.com", "Reader")

	resp := doRequest(t, app, http.MethodPost, "/bookmarks", bearerToken(t, user),
		map[string]string{"resource_id": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/bookmarks", "", map[string]string{"resource_id": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
