package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a financial transaction in the system
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   string          `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `json:"description"`
	Type        TransactionType `gorm:"not null" json:"type"`

	Allocations []TransactionCategory `gorm:"foreignKey:TransactionID" json:"categories"`
}

// TransactionCategory allocates part of a transaction to a category.
// The (transaction, category) pair is the identity, so a transaction can
// reference each category at most once.
type TransactionCategory struct {
	TransactionID   string          `gorm:"type:uuid;primaryKey" json:"transaction_id"`
	CategoryID      string          `gorm:"type:uuid;primaryKey;index" json:"category_id"`
	AllocatedAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"allocated_amount"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// DateOnly truncates t to midnight UTC of its calendar day. Transaction and
// budget dates are always stored this way so inclusive range checks compare
// whole days.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
