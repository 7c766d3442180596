package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending limit for one category. Spend is only checked
// against the limit when both StartDate and EndDate are set.
type Budget struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_budgets_user_category" json:"user_id"`
	CategoryID  string          `gorm:"type:uuid;not null;index:idx_budgets_user_category" json:"category_id"`
	Period      string          `gorm:"not null" json:"period"`
	LimitAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"limit_amount"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// HasWindow reports whether the budget defines an evaluation window.
func (b *Budget) HasWindow() bool {
	return b.StartDate != nil && b.EndDate != nil
}
