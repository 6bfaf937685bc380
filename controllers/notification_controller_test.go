package controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/models"
)

type notificationFeed struct {
	Notifications []struct {
		ID      uint      `json:"id"`
		Type    string    `json:"type"`
		Message string    `json:"message"`
		Date    time.Time `json:"date"`
		Status  string    `json:"status"`
	} `json:"notifications"`
}

func TestNotificationFeedOrdering(t *testing.T) {
	app, db := setupTestApp(t)
	me := createTestUser(t, db, "me@example.com", "Me")
	alice := createTestUser(t, db, "alice@example.com", "Alice")
	bob := createTestUser(t, db, "bob@example.com", "Bob")

	myIdea := createTestIdea(t, db, me, "My Idea")
	aliceIdea := createTestIdea(t, db, alice, "Alice's Idea")

	t1 := time.Now().Add(-2 * time.Hour)
	t2 := time.Now().Add(-1 * time.Hour)

	// Incoming at t1: bob wants to join my idea
	incoming := models.TeamRequest{
		IdeaID:    myIdea.ID,
		UserID:    bob.ID,
		Status:    models.RequestPending,
		CreatedAt: t1,
		UpdatedAt: t1,
	}
	require.NoError(t, db.Create(&incoming).Error)

	// Update at t2 > t1: my request to alice got accepted
	outbound := models.TeamRequest{
		IdeaID:    aliceIdea.ID,
		UserID:    me.ID,
		Status:    models.RequestAccepted,
		CreatedAt: t1,
		UpdatedAt: t2,
	}
	require.NoError(t, db.Create(&outbound).Error)

	resp := doRequest(t, app, http.MethodGet, "/notifications", bearerToken(t, me), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed notificationFeed
	decodeBody(t, resp, &feed)
	require.Len(t, feed.Notifications, 2)

	// Later item first
	assert.Equal(t, "REQUEST_UPDATE", feed.Notifications[0].Type)
	assert.Equal(t, models.RequestAccepted, feed.Notifications[0].Status)
	assert.Contains(t, feed.Notifications[0].Message, "accepted")

	assert.Equal(t, "INCOMING_REQUEST", feed.Notifications[1].Type)
	assert.Contains(t, feed.Notifications[1].Message, "Bob")
	assert.Contains(t, feed.Notifications[1].Message, "My Idea")
}

func TestNotificationFeedScoping(t *testing.T) {
	app, db := setupTestApp(t)
	me := createTestUser(t, db, "me@example.com", "Me")
	alice := createTestUser(t, db, "alice@example.com", "Alice")
	bob := createTestUser(t, db, "bob@example.com", "Bob")

	aliceIdea := createTestIdea(t, db, alice, "Alice's Idea")

	// Bob's pending request against Alice's idea is none of my business,
	// and my own still-pending request is not an update yet.
	require.NoError(t, db.Create(&models.TeamRequest{
		IdeaID: aliceIdea.ID, UserID: bob.ID, Status: models.RequestPending,
	}).Error)
	require.NoError(t, db.Create(&models.TeamRequest{
		IdeaID: aliceIdea.ID, UserID: me.ID, Status: models.RequestPending,
	}).Error)

	resp := doRequest(t, app, http.MethodGet, "/notifications", bearerToken(t, me), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed notificationFeed
	decodeBody(t, resp, &feed)
	assert.Empty(t, feed.Notifications)

	resp = doRequest(t, app, http.MethodGet, "/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNotificationUpdateCap(t *testing.T) {
	app, db := setupTestApp(t)
	me := createTestUser(t, db, "me@example.com", "Me")

	// 12 decided requests against 12 different ideas; only 10 come back
	for i := 0; i < 12; i++ {
		owner := createTestUser(t, db, string(rune('a'+i))+"@example.com", "Owner")
		idea := createTestIdea(t, db, owner, "Idea")
		require.NoError(t, db.Create(&models.TeamRequest{
			IdeaID: idea.ID, UserID: me.ID, Status: models.RequestRejected,
		}).Error)
	}

	resp := doRequest(t, app, http.MethodGet, "/notifications", bearerToken(t, me), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed notificationFeed
	decodeBody(t, resp, &feed)
	assert.Len(t, feed.Notifications, 10)
}
