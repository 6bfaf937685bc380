package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hackhub/models"
)

type ideaListing struct {
	Data []struct {
		ID    uint     `json:"ID"`
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
		User  struct {
			Name *string `json:"name"`
		} `json:"user"`
		RequestCount int `json:"request_count"`
	} `json:"data"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func seedIdea(t *testing.T, db *gorm.DB, owner *models.User, title, description string, tags []string) *models.Idea {
	t.Helper()

	idea := &models.Idea{
		UserID:      owner.ID,
		Title:       title,
		Description: description,
		Tags:        tags,
	}
	require.NoError(t, db.Create(idea).Error)
	return idea
}

func TestIdeaSearch(t *testing.T) {
	app, db := setupTestApp(t)
	owner := createTestUser(t, db, "owner@example.com", "Owner")

	seedIdea(t, db, owner, "AI Tutor", "teaches math", []string{"education"})
	seedIdea(t, db, owner, "Garden Planner", "uses aI vision for plants", []string{"gardening"})
	seedIdea(t, db, owner, "Recipe Box", "stores recipes", []string{"AI", "food"})
	seedIdea(t, db, owner, "Bike Tracker", "gps for bikes", []string{"fitness"})

	resp := doRequest(t, app, http.MethodGet, "/ideas?search=AI", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing ideaListing
	decodeBody(t, resp, &listing)

	titles := make([]string, 0, len(listing.Data))
	for _, item := range listing.Data {
		titles = append(titles, item.Title)
	}
	assert.ElementsMatch(t, []string{"AI Tutor", "Garden Planner", "Recipe Box"}, titles)
	assert.EqualValues(t, 3, listing.Total)
}

func TestIdeaListPagination(t *testing.T) {
	app, db := setupTestApp(t)
	owner := createTestUser(t, db, "owner@example.com", "Owner")

	for i := 0; i < 15; i++ {
		seedIdea(t, db, owner, fmt.Sprintf("Idea %02d", i), "description", nil)
	}

	resp := doRequest(t, app, http.MethodGet, "/ideas?page=2&limit=10", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing ideaListing
	decodeBody(t, resp, &listing)
	assert.EqualValues(t, 15, listing.Total)
	assert.Equal(t, 2, listing.Pages)
	assert.Equal(t, 2, listing.Page)
	assert.Len(t, listing.Data, 5)
}

func TestIdeaCreate(t *testing.T) {
	app, db := setupTestApp(t)
	user := createTestUser(t, db, "author@example.com", "Author")

	t.Run("requires authentication", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/ideas", "",
			map[string]interface{}{"title": "X", "description": "Y"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/ideas", bearerToken(t, user),
			map[string]interface{}{"title": "X"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("creates for caller", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/ideas", bearerToken(t, user),
			map[string]interface{}{
				"title":       "Solar Tracker",
				"description": "follows the sun",
				"tags":        []string{"hardware", "energy"},
			})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var idea models.Idea
		require.NoError(t, db.Where("title = ?", "Solar Tracker").First(&idea).Error)
		assert.Equal(t, user.ID, idea.UserID)
		assert.Equal(t, []string{"hardware", "energy"}, idea.Tags)
	})
}

func TestIdeaOwnership(t *testing.T) {
	app, db := setupTestApp(t)
	owner := createTestUser(t, db, "owner@example.com", "Owner")
	other := createTestUser(t, db, "other@example.com", "Other")
	idea := seedIdea(t, db, owner, "Original", "description", nil)
	path := fmt.Sprintf("/ideas/%d", idea.ID)

	update := map[string]interface{}{"title": "Hijacked", "description": "nope"}

	t.Run("non-owner cannot update", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, path, bearerToken(t, other), update)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodDelete, path, bearerToken(t, other), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("404 wins over 403", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, "/ideas/9999", bearerToken(t, other), update)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("owner updates", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, path, bearerToken(t, owner),
			map[string]interface{}{"title": "Renamed", "description": "still mine"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reloaded models.Idea
		require.NoError(t, db.First(&reloaded, idea.ID).Error)
		assert.Equal(t, "Renamed", reloaded.Title)
	})
}

func TestIdeaDeleteCascadesRequests(t *testing.T) {
	app, db := setupTestApp(t)
	owner := createTestUser(t, db, "owner@example.com", "Owner")
	joiner := createTestUser(t, db, "joiner@example.com", "Joiner")
	idea := seedIdea(t, db, owner, "Doomed", "to be deleted", nil)

	require.NoError(t, db.Create(&models.TeamRequest{
		IdeaID: idea.ID, UserID: joiner.ID, Status: models.RequestPending,
	}).Error)

	resp := doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/ideas/%d", idea.ID), bearerToken(t, owner), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.TeamRequest{}).Where("idea_id = ?", idea.ID).Count(&count)
	assert.Zero(t, count)

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/ideas/%d", idea.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
