package models

import "time"

const (
	RoleCharity   = "charity"
	RoleVolunteer = "volunteer"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FirstName    string  `gorm:"type:varchar(255); not null" json:"fname"`
	LastName     string  `gorm:"type:varchar(255); not null" json:"lname"`
	Email        string  `gorm:"type:varchar(255); unique;not null" json:"email"`
	Password     string  `gorm:"type:varchar(255); not null" json:"-"`
	PhoneNumber  string  `gorm:"type:varchar(32)" json:"phoneNo"`
	ProfileImage string  `gorm:"type:varchar(255)" json:"profileImg"`
	Role         string  `gorm:"type:varchar(32); not null" json:"role"`
	Verified     bool    `gorm:"not null;default:false" json:"-"`
	VerifyToken  *string `gorm:"type:varchar(64);index" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
