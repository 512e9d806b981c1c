package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charityIO/charityIOBack/services"
	"github.com/charityIO/charityIOBack/utils"
)

type VolunteeringController struct {
	Workflow *services.VolunteeringService
	Roster   *services.RosterService
}

func NewVolunteeringController(workflow *services.VolunteeringService, roster *services.RosterService) *VolunteeringController {
	return &VolunteeringController{Workflow: workflow, Roster: roster}
}

// SendVolunteeringRequest notifies an event's organizer that the signed-in
// volunteer wants to join.
func (vc *VolunteeringController) SendVolunteeringRequest(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		Organizer string `json:"organizer" binding:"required,email"`
		ID        uint   `json:"id" binding:"required"`
		Name      string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	notification, err := vc.Workflow.SubmitRequest(email, req.ID, req.Name, req.Organizer)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK,
		fmt.Sprintf("Congrats, A notification has been sent to %s for %s event", req.Organizer, req.Name),
		notification)
}

// HandleVolunteeringRequest applies the organizer's accept/deny decision.
// The original client sends action "yes" for accept; anything else denies.
func (vc *VolunteeringController) HandleVolunteeringRequest(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		NotificationID uint   `json:"notificationId" binding:"required"`
		Action         string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	decision := services.DecisionDeny
	if req.Action == "yes" {
		decision = services.DecisionAccept
	}

	outcome, response, err := vc.Workflow.ResolveRequest(req.NotificationID, decision, email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, outcome, response)
}

// RemoveVolunteerFromEvent withdraws the signed-in volunteer from an event.
func (vc *VolunteeringController) RemoveVolunteerFromEvent(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		EventID uint `json:"eventID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := vc.Roster.RemoveVolunteer(req.EventID, email); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "You are no longer a volunteer for this event", nil)
}
