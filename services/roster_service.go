package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
)

// errRosterConflict signals that a concurrent writer got to the event row
// first. Callers retry with a fresh read.
var errRosterConflict = errors.New("roster changed concurrently")

const rosterWriteAttempts = 3

// RosterService owns every mutation of an event's volunteer list. Writes
// are compare-and-swap on the roster version, so two concurrent updates
// against the same event cannot overwrite each other's changes.
type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

// AddVolunteer appends email to the event's roster inside the caller's
// transaction. The append only happens if the email is not already present
// and the roster is still under capacity. Returns errRosterConflict when
// the version check fails; the caller retries the whole transaction.
func (s *RosterService) AddVolunteer(tx *gorm.DB, eventID uint, email string) (*models.Event, error) {
	var event models.Event
	if err := tx.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load event %d: %w", eventID, err)
	}

	if event.HasVolunteer(email) {
		return nil, ErrAlreadyVolunteer
	}
	if len(event.Volunteers) >= event.VolunteersRequired {
		return nil, ErrRosterFull
	}

	updated := append(append(models.EmailList{}, event.Volunteers...), email)
	if err := s.swapRoster(tx, &event, updated); err != nil {
		return nil, err
	}
	return &event, nil
}

// RemoveVolunteer filters every occurrence of email out of the roster.
// Removing an email that is not on the roster is a no-op, so repeated
// withdrawal is safe.
func (s *RosterService) RemoveVolunteer(eventID uint, email string) (*models.Event, error) {
	for attempt := 0; attempt < rosterWriteAttempts; attempt++ {
		var event models.Event
		if err := s.db.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("load event %d: %w", eventID, err)
		}

		kept := make(models.EmailList, 0, len(event.Volunteers))
		for _, v := range event.Volunteers {
			if v != email {
				kept = append(kept, v)
			}
		}
		if len(kept) == len(event.Volunteers) {
			return &event, nil
		}

		err := s.swapRoster(s.db, &event, kept)
		if err == nil {
			return &event, nil
		}
		if !errors.Is(err, errRosterConflict) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("remove volunteer %s from event %d: %w", email, eventID, errRosterConflict)
}

// swapRoster writes the new roster only if nobody else has written since
// event was read. On success event is updated in place.
func (s *RosterService) swapRoster(tx *gorm.DB, event *models.Event, roster models.EmailList) error {
	res := tx.Model(&models.Event{}).
		Where("id = ? AND roster_version = ?", event.ID, event.RosterVersion).
		Updates(map[string]interface{}{
			"volunteers":     roster,
			"roster_version": event.RosterVersion + 1,
		})
	if res.Error != nil {
		return fmt.Errorf("save event %d: %w", event.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return errRosterConflict
	}
	event.Volunteers = roster
	event.RosterVersion++
	return nil
}
