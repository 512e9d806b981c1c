package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charityIO/charityIOBack/models"
)

func TestGetNotifications(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	_, token := seedUser(t, db, "org@charity.org", models.RoleCharity)

	for i := 0; i < 7; i++ {
		n := models.Notification{
			From:    fmt.Sprintf("v%d@x.com", i),
			To:      "org@charity.org",
			Message: fmt.Sprintf("Hi, v%d@x.com wants to be a volunteer for Food Drive event", i),
			Type:    models.NotificationTypeRequest,
		}
		assert.NoError(t, db.Create(&n).Error)
	}
	// Someone else's notification stays out of the listing.
	other := models.Notification{From: "a@x.com", To: "other@charity.org", Message: "x", Type: models.NotificationTypeRequest}
	assert.NoError(t, db.Create(&other).Error)

	w := doJSON(t, r, "GET", "/user/notifications", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	notifications := data["notifications"].([]interface{})
	assert.Len(t, notifications, 5)
	assert.Equal(t, float64(5), data["numberOfUnseenNotifications"])

	// Newest first.
	first := notifications[0].(map[string]interface{})
	assert.Contains(t, first["message"], "v6@x.com")
}

func TestSeeNotifications(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	_, token := seedUser(t, db, "org@charity.org", models.RoleCharity)

	n := models.Notification{From: "v@x.com", To: "org@charity.org", Message: "x", Type: models.NotificationTypeRequest}
	assert.NoError(t, db.Create(&n).Error)

	w := doJSON(t, r, "GET", "/user/seeNotifications", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var seen models.Notification
	assert.NoError(t, db.First(&seen, n.ID).Error)
	assert.True(t, seen.Seen)

	w = doJSON(t, r, "GET", "/user/notifications", token, nil)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["numberOfUnseenNotifications"])
}

func TestNotificationsRequireAuth(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	w := doJSON(t, r, "GET", "/user/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
