package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
)

// How many notifications the bell dropdown shows.
const recentNotificationLimit = 5

// NotificationService is the read side of the notification ledger.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ListRecent returns the newest notifications addressed to recipient, newest
// first, capped at the dropdown size. The unseen count is computed over the
// returned page only, so with more than a pageful of unseen notifications it
// under-reports. The frontend relies on exactly that behavior.
func (s *NotificationService) ListRecent(recipient string) ([]models.Notification, int, error) {
	var notifications []models.Notification
	err := s.db.Where("to_email = ?", recipient).
		Order("created_at DESC").
		Order("id DESC").
		Limit(recentNotificationLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications for %s: %w", recipient, err)
	}

	unseen := 0
	for _, n := range notifications {
		if !n.Seen {
			unseen++
		}
	}
	return notifications, unseen, nil
}

// MarkAllSeen flips seen on every notification addressed to recipient.
// Unconditional and idempotent.
func (s *NotificationService) MarkAllSeen(recipient string) error {
	err := s.db.Model(&models.Notification{}).
		Where("to_email = ?", recipient).
		Update("seen", true).Error
	if err != nil {
		return fmt.Errorf("mark notifications seen for %s: %w", recipient, err)
	}
	return nil
}
