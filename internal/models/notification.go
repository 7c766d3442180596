package models

import (
	"time"

	"fintrack/internal/uuid"

	"gorm.io/gorm"
)

// Notification is a message to a user raised by the system.
// Notifications are append-only, so there is no Base embed and no UpdatedAt.
type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New()
	}
	return nil
}
