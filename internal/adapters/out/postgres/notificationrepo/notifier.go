// Package notificationrepo persists user-facing notification records.
// Notifications are write-mostly: the application creates them on payment
// and status events, and a separate surface reads them for display.
package notificationrepo

import (
	"context"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for notification records.
type NotificationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Title   string
	Message string
	Read    bool

	CreatedAt time.Time
}

// TableName specifies the database table name for notification records.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotifier implements the Notifier port by inserting notification rows.
type GormNotifier struct {
	db *gorm.DB
}

// NewGormNotifier creates a notifier backed by the given database connection.
func NewGormNotifier(db *gorm.DB) *GormNotifier {
	return &GormNotifier{db: db}
}

// Notify writes one notification record for the given user.
func (n *GormNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	dto := NotificationDTO{
		ID:      uuid.New(),
		UserID:  notification.UserID.Bytes(),
		Title:   notification.Title,
		Message: notification.Message,
	}

	return n.db.WithContext(ctx).Create(&dto).Error
}
