package models

import "time"

type Event struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255); not null" json:"name"`
	Zipcode     string `gorm:"type:varchar(16)" json:"zipcode"`
	Description string `gorm:"type:text" json:"description"`
	// Start before End is expected but not enforced anywhere.
	Start              time.Time `gorm:"column:start_time" json:"start"`
	End                time.Time `gorm:"column:end_time" json:"end"`
	Image              string    `gorm:"type:varchar(255)" json:"image"`
	Organizer          string    `gorm:"type:varchar(255); not null;index" json:"organizer"`
	VolunteersRequired int       `gorm:"not null" json:"numberOfVolunteersRequired"`
	Volunteers         EmailList `gorm:"type:text" json:"volunteers"`
	// RosterVersion increments on every roster write; roster updates are
	// conditional on it so concurrent writes cannot overwrite each other.
	RosterVersion int `gorm:"not null;default:0" json:"-"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasVolunteer reports whether email is already on the roster.
func (e *Event) HasVolunteer(email string) bool {
	for _, v := range e.Volunteers {
		if v == email {
			return true
		}
	}
	return false
}
