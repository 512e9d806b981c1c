package models

import "time"

const (
	NotificationTypeRequest  = "VOLUNTEERING_REQUEST"
	NotificationTypeResponse = "VOLUNTEERING_RESPONSE"
)

// Notification is append-mostly: only Seen and Catered ever change after
// creation. Catered is meaningful only for VOLUNTEERING_REQUEST rows.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	From    string `gorm:"column:from_email;type:varchar(255); not null" json:"from"`
	To      string `gorm:"column:to_email;type:varchar(255); not null;index" json:"to"`
	Message string `gorm:"type:text;not null" json:"message"`
	Type    string `gorm:"type:varchar(32); not null" json:"type"`
	// Soft reference, no foreign key constraint.
	EventID   uint      `json:"eventID"`
	Seen      bool      `gorm:"not null;default:false" json:"seen"`
	Catered   bool      `gorm:"not null;default:false" json:"catered"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
