package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/utils"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// parseEventDate accepts the date-picker format and full timestamps.
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseVolunteers(raw string) (models.EmailList, error) {
	if raw == "" {
		return models.EmailList{}, nil
	}
	var volunteers models.EmailList
	if err := json.Unmarshal([]byte(raw), &volunteers); err != nil {
		return nil, errors.New("volunteers must be a JSON array of emails")
	}
	return volunteers, nil
}

// excludingCaller narrows a query to events the caller is not part of:
// charities do not see their own events, volunteers do not see events they
// already volunteer for.
func excludingCaller(query *gorm.DB, email, role string) *gorm.DB {
	if role == models.RoleCharity {
		return query.Where("organizer <> ?", email)
	}
	return query.Where("volunteers NOT LIKE ?", `%"`+email+`"%`)
}

// involvingCaller is the mirror filter for "my events".
func involvingCaller(query *gorm.DB, email, role string) *gorm.DB {
	if role == models.RoleCharity {
		return query.Where("organizer = ?", email)
	}
	return query.Where("volunteers LIKE ?", `%"`+email+`"%`)
}

// CreateEvent adds a new event owned by the signed-in charity.
func (ec *EventController) CreateEvent(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		Name               string `form:"name" binding:"required"`
		Zipcode            string `form:"zipcode"`
		Description        string `form:"description"`
		Start              string `form:"start" binding:"required"`
		End                string `form:"end" binding:"required"`
		VolunteersRequired int    `form:"numberOfVolunteersRequired" binding:"required,min=1"`
		Volunteers         string `form:"volunteers"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	volunteers, err := parseVolunteers(req.Volunteers)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(volunteers) > req.VolunteersRequired {
		utils.RespondError(c, http.StatusBadRequest, errors.New(
			"The number of volunteers are more than the number specified. Kindly adjust the number of volunteers"))
		return
	}

	start, err := parseEventDate(req.Start)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	end, err := parseEventDate(req.End)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	image := ""
	if file, ferr := c.FormFile("image"); ferr == nil {
		name, serr := utils.SaveEventImage(c, file, email)
		if serr != nil {
			respondServiceError(c, serr)
			return
		}
		image = name
	}

	event := models.Event{
		Name:               req.Name,
		Zipcode:            req.Zipcode,
		Description:        req.Description,
		Start:              start,
		End:                end,
		Image:              image,
		Organizer:          email,
		VolunteersRequired: req.VolunteersRequired,
		Volunteers:         volunteers,
	}
	if err := ec.DB.Create(&event).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New event created: %s by %s", event.Name, email)
	utils.RespondJSON(c, http.StatusCreated, "New event has been added", event)
}

// UpdateEvent edits an event. Only the organizer may do so, and the roster
// may not already meet the new capacity.
func (ec *EventController) UpdateEvent(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		ID                 uint   `form:"id" binding:"required"`
		Name               string `form:"name" binding:"required"`
		Zipcode            string `form:"zipcode"`
		Description        string `form:"description"`
		Start              string `form:"start" binding:"required"`
		End                string `form:"end" binding:"required"`
		VolunteersRequired int    `form:"numberOfVolunteersRequired" binding:"required,min=1"`
		Volunteers         string `form:"volunteers"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	volunteers, err := parseVolunteers(req.Volunteers)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(volunteers) >= req.VolunteersRequired {
		utils.RespondError(c, http.StatusBadRequest, errors.New(
			"The number of volunteers are more than the number specified. Kindly adjust the number of volunteers"))
		return
	}

	start, err := parseEventDate(req.Start)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	end, err := parseEventDate(req.End)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var event models.Event
	if err := ec.DB.Where("id = ? AND organizer = ?", req.ID, email).First(&event).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Event not found"))
		return
	}

	event.Name = req.Name
	event.Zipcode = req.Zipcode
	event.Description = req.Description
	event.Start = start
	event.End = end
	event.VolunteersRequired = req.VolunteersRequired
	event.Volunteers = volunteers
	if file, ferr := c.FormFile("image"); ferr == nil {
		name, serr := utils.SaveEventImage(c, file, email)
		if serr != nil {
			respondServiceError(c, serr)
			return
		}
		event.Image = name
	}

	if err := ec.DB.Save(&event).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Event has been updated", event)
}

// GetEvent fetches one event by id.
func (ec *EventController) GetEvent(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var event models.Event
	if err := ec.DB.First(&event, req.ID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Event not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Event detail", event)
}

// GetEvents lists events the caller is not yet involved in, newest first.
func (ec *EventController) GetEvents(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := c.GetString("role")

	var events []models.Event
	query := excludingCaller(ec.DB.Model(&models.Event{}), email, role)
	if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Events", gin.H{"events": events})
}

// GetMyEvents lists the events the caller organizes or volunteers for.
func (ec *EventController) GetMyEvents(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := c.GetString("role")

	var events []models.Event
	query := involvingCaller(ec.DB.Model(&models.Event{}), email, role)
	if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "My events", gin.H{"events": events})
}

// SearchEvents filters the "events for me" listing by name substring,
// zipcode and date window.
func (ec *EventController) SearchEvents(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := c.GetString("role")

	var req struct {
		Name    string `json:"name"`
		Zipcode string `json:"zipcode"`
		Start   string `json:"start"`
		End     string `json:"end"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	query := excludingCaller(ec.DB.Model(&models.Event{}), email, role)
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}
	if req.Zipcode != "" {
		query = query.Where("zipcode = ?", req.Zipcode)
	}
	if req.Start != "" {
		start, err := parseEventDate(req.Start)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		query = query.Where("start_time < ?", start)
	}
	if req.End != "" {
		end, err := parseEventDate(req.End)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		query = query.Where("end_time > ?", end)
	}

	var events []models.Event
	if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Search results", gin.H{"events": events})
}

// DeleteEvent removes an event. Scoping the delete to the organizer means
// someone else's id silently deletes nothing.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	email, ok := currentEmail(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := ec.DB.Where("id = ? AND organizer = ?", req.ID, email).Delete(&models.Event{})
	if res.Error != nil {
		respondServiceError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Event not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Event Deleted", nil)
}
