package models

// Category is a globally shared label that transactions allocate amounts to
// and budgets are set against.
type Category struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}
