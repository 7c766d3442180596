package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Progress is whatever the user last recorded.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"current_amount"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
}
