package models

import "github.com/shopspring/decimal"

// Account represents a user's financial account. The balance is maintained
// by the user and is not derived from transactions.
type Account struct {
	Base
	UserID  string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string          `gorm:"not null" json:"name"`
	Balance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"balance"`
}
