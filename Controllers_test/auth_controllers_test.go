package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charityIO/charityIOBack/models"
)

func TestSignupVerifySigninFlow(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	// Signup
	w := doForm(t, r, "POST", "/signup", "", map[string]string{
		"fname":   "Jane",
		"lname":   "Doe",
		"pwd":     "password123",
		"email":   "jane@x.com",
		"role":    "volunteer",
		"phoneNo": "5551234",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "jane@x.com").First(&user).Error)
	assert.False(t, user.Verified)
	assert.NotNil(t, user.VerifyToken)

	// Signin before verification is refused.
	w = doJSON(t, r, "POST", "/signin", "", map[string]string{
		"email": "jane@x.com",
		"pwd":   "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Verify with the emailed token.
	w = doJSON(t, r, "GET", "/verify?token="+*user.VerifyToken, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Now signin succeeds and returns a token.
	w = doJSON(t, r, "POST", "/signin", "", map[string]string{
		"email": "jane@x.com",
		"pwd":   "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)
	seedUser(t, db, "taken@x.com", models.RoleVolunteer)

	w := doForm(t, r, "POST", "/signup", "", map[string]string{
		"fname": "Jane",
		"lname": "Doe",
		"pwd":   "password123",
		"email": "taken@x.com",
		"role":  "volunteer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, false, resp["status"])
	assert.Equal(t, "error", resp["appearance"])
}

func TestSigninWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)
	seedUser(t, db, "jane@x.com", models.RoleVolunteer)

	w := doJSON(t, r, "POST", "/signin", "", map[string]string{
		"email": "jane@x.com",
		"pwd":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSigninUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	w := doJSON(t, r, "POST", "/signin", "", map[string]string{
		"email": "ghost@x.com",
		"pwd":   "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyWithoutToken(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	w := doJSON(t, r, "GET", "/verify", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignoutBlacklistsToken(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)
	_, token := seedUser(t, db, "jane@x.com", models.RoleVolunteer)

	w := doJSON(t, r, "GET", "/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/user/signout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The same token no longer works.
	w = doJSON(t, r, "GET", "/user/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	db := setupTestDB(t)
	r := newAppRouter(db)

	w := doJSON(t, r, "GET", "/user/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
