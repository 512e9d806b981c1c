package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/utils"
)

const (
	DecisionAccept = "accept"
	DecisionDeny   = "deny"
)

// Pusher delivers a freshly created notification to a connected recipient.
// Delivery is best-effort; the notification is already persisted.
type Pusher interface {
	Push(email string, notification models.Notification)
}

// VolunteeringService drives a volunteering request from submission to
// resolution: request notification, organizer decision, roster update and
// the response notification back to the requester.
type VolunteeringService struct {
	db     *gorm.DB
	roster *RosterService
	hub    Pusher
}

func NewVolunteeringService(db *gorm.DB, roster *RosterService, hub Pusher) *VolunteeringService {
	return &VolunteeringService{db: db, roster: roster, hub: hub}
}

// SubmitRequest records a volunteering request as a notification addressed
// to the event's organizer. Repeated submissions create repeated
// notifications; only the accept path deduplicates against the roster.
func (s *VolunteeringService) SubmitRequest(requesterEmail string, eventID uint, eventName, organizerEmail string) (*models.Notification, error) {
	if requesterEmail == organizerEmail {
		return nil, ErrNotAuthorized
	}

	notification := models.Notification{
		To:      organizerEmail,
		From:    requesterEmail,
		Message: fmt.Sprintf("Hi, %s wants to be a volunteer for %s event", requesterEmail, eventName),
		EventID: eventID,
		Type:    models.NotificationTypeRequest,
		Seen:    false,
		Catered: false,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("create request notification: %w", err)
	}

	s.push(notification)
	utils.InfoLogger.Printf("Volunteering request %d: %s -> %s (event %d)",
		notification.ID, requesterEmail, organizerEmail, eventID)
	return &notification, nil
}

// ResolveRequest applies the organizer's decision to a pending request.
// The catered flip, the roster append and the response notification all
// commit together or not at all; a request can only be resolved once.
func (s *VolunteeringService) ResolveRequest(notificationID uint, decision, actingEmail string) (string, *models.Notification, error) {
	var request models.Notification
	if err := s.db.First(&request, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("load notification %d: %w", notificationID, err)
	}

	if request.Type != models.NotificationTypeRequest {
		return "", nil, ErrNotFound
	}
	// Only the organizer the request was addressed to may resolve it.
	if request.To != actingEmail {
		return "", nil, ErrNotAuthorized
	}

	var response models.Notification
	resolve := func(tx *gorm.DB) error {
		// Conditional flip: zero affected rows means someone else (or an
		// earlier call) already resolved this request.
		res := tx.Model(&models.Notification{}).
			Where("id = ? AND catered = ?", request.ID, false).
			Update("catered", true)
		if res.Error != nil {
			return fmt.Errorf("mark notification %d catered: %w", request.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyResolved
		}

		if decision == DecisionAccept {
			if _, err := s.roster.AddVolunteer(tx, request.EventID, request.From); err != nil {
				return err
			}
			response = models.Notification{
				To:   request.From,
				From: request.To,
				Message: fmt.Sprintf(
					"Hi, %s has accepted your volunteering request. You are now a volunteer for Event with event ID %d",
					actingEmail, request.EventID),
				EventID: request.EventID,
				Type:    models.NotificationTypeResponse,
				Seen:    false,
			}
		} else {
			response = models.Notification{
				To:   request.From,
				From: request.To,
				Message: fmt.Sprintf(
					"Hi, %s has denied your volunteering request for Event with event ID %d",
					actingEmail, request.EventID),
				EventID: request.EventID,
				Type:    models.NotificationTypeResponse,
				Seen:    false,
			}
		}

		if err := tx.Create(&response).Error; err != nil {
			return fmt.Errorf("create response notification: %w", err)
		}
		return nil
	}

	// A roster conflict means another writer touched the event between our
	// read and write. The rollback also undoes the catered flip, so the
	// whole transaction can be retried from scratch.
	var err error
	for attempt := 0; attempt < rosterWriteAttempts; attempt++ {
		err = s.db.Transaction(resolve)
		if !errors.Is(err, errRosterConflict) {
			break
		}
	}
	if err != nil {
		return "", nil, err
	}

	s.push(response)

	outcome := "You have denied this volunteering request"
	if decision == DecisionAccept {
		outcome = "You have accepted this volunteering request"
	}
	utils.InfoLogger.Printf("Volunteering request %d resolved (%s) by %s",
		request.ID, decision, actingEmail)
	return outcome, &response, nil
}

func (s *VolunteeringService) push(notification models.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Push(notification.To, notification)
}
