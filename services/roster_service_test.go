package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charityIO/charityIOBack/models"
)

func TestAddVolunteerAppends(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	event := createTestEvent(t, db, "org@charity.org", 3, "v1@x.com")

	updated, err := roster.AddVolunteer(db, event.ID, "v2@x.com")
	assert.NoError(t, err)
	assert.Equal(t, models.EmailList{"v1@x.com", "v2@x.com"}, updated.Volunteers)

	var stored models.Event
	assert.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, models.EmailList{"v1@x.com", "v2@x.com"}, stored.Volunteers)
}

func TestAddVolunteerRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	event := createTestEvent(t, db, "org@charity.org", 3, "v1@x.com")

	_, err := roster.AddVolunteer(db, event.ID, "v1@x.com")
	assert.ErrorIs(t, err, ErrAlreadyVolunteer)
}

func TestAddVolunteerRejectsFullRoster(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	event := createTestEvent(t, db, "org@charity.org", 2, "v1@x.com", "v2@x.com")

	_, err := roster.AddVolunteer(db, event.ID, "v3@x.com")
	assert.ErrorIs(t, err, ErrRosterFull)
}

func TestAddVolunteerUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)

	_, err := roster.AddVolunteer(db, 4242, "v@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveVolunteerFiltersAllOccurrences(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	// The data layer does not prevent duplicates written by other paths;
	// removal still clears every occurrence.
	event := createTestEvent(t, db, "org@charity.org", 5, "v@x.com", "keep@x.com", "v@x.com")

	updated, err := roster.RemoveVolunteer(event.ID, "v@x.com")
	assert.NoError(t, err)
	assert.Equal(t, models.EmailList{"keep@x.com"}, updated.Volunteers)
}

func TestRemoveVolunteerIdempotent(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	event := createTestEvent(t, db, "org@charity.org", 5, "v@x.com", "keep@x.com")

	first, err := roster.RemoveVolunteer(event.ID, "v@x.com")
	assert.NoError(t, err)

	second, err := roster.RemoveVolunteer(event.ID, "v@x.com")
	assert.NoError(t, err)
	assert.Equal(t, first.Volunteers, second.Volunteers)
	assert.Equal(t, models.EmailList{"keep@x.com"}, second.Volunteers)
}

func TestRemoveVolunteerUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)

	_, err := roster.RemoveVolunteer(4242, "v@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSwapRosterDetectsConcurrentWrite(t *testing.T) {
	db := newTestDB(t)
	roster := NewRosterService(db)
	event := createTestEvent(t, db, "org@charity.org", 5)

	// Simulate a writer that raced us to the row.
	stale := *event
	_, err := roster.AddVolunteer(db, event.ID, "first@x.com")
	assert.NoError(t, err)

	err = roster.swapRoster(db, &stale, models.EmailList{"second@x.com"})
	assert.ErrorIs(t, err, errRosterConflict)

	// The first write survives.
	var stored models.Event
	assert.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, models.EmailList{"first@x.com"}, stored.Volunteers)
}
