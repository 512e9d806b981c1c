package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charityIO/charityIOBack/services"
	"github.com/charityIO/charityIOBack/utils"
)

// currentEmail returns the authenticated user's email as stored by the auth
// middleware.
func currentEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("email")
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// respondServiceError maps the service error taxonomy onto HTTP codes.
// Anything outside the taxonomy stays a generic 500 so internals never
// leak to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrNotAuthorized):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrAlreadyResolved),
		errors.Is(err, services.ErrRosterFull),
		errors.Is(err, services.ErrAlreadyVolunteer),
		errors.Is(err, services.ErrEmailTaken):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidToken):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("Unexpected error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("An unexpected error occurred"))
	}
}
