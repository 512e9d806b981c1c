package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/charityIO/charityIOBack/live"
	"github.com/charityIO/charityIOBack/services"
	"github.com/charityIO/charityIOBack/utils"
)

type NotificationController struct {
	Service *services.NotificationService
	Hub     *live.Hub
}

func NewNotificationController(service *services.NotificationService, hub *live.Hub) *NotificationController {
	return &NotificationController{Service: service, Hub: hub}
}

// GetNotifications returns the caller's latest notifications together with
// the unseen count of that page.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	notifications, unseen, err := nc.Service.ListRecent(email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notifications", gin.H{
		"notifications":               notifications,
		"numberOfUnseenNotifications": unseen,
	})
}

// SeeNotifications marks everything addressed to the caller as seen.
func (nc *NotificationController) SeeNotifications(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := nc.Service.MarkAllSeen(email); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All notifications marked as seen", nil)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationsWS upgrades to a websocket and streams the caller's new
// notifications until the connection drops.
func (nc *NotificationController) NotificationsWS(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	nc.Hub.Register(ws, email)
	defer nc.Hub.Unregister(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
