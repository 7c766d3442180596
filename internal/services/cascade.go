package services

import (
	"gorm.io/gorm"

	"fintrack/internal/models"
)

// Deletes are hard deletes and the schema has no ON DELETE CASCADE, so the
// helpers below remove children before parents. They must run inside the
// caller's database transaction.

// deleteTransactionsWhere removes the transactions matching query and the
// allocations that belong to them.
func deleteTransactionsWhere(tx *gorm.DB, query string, args ...interface{}) error {
	ids := tx.Model(&models.Transaction{}).Select("id").Where(query, args...)
	if err := tx.Where("transaction_id IN (?)", ids).Delete(&models.TransactionCategory{}).Error; err != nil {
		return err
	}
	return tx.Where(query, args...).Delete(&models.Transaction{}).Error
}

// deleteUserData removes everything owned by userID, then the user.
func deleteUserData(tx *gorm.DB, userID string) error {
	if err := deleteTransactionsWhere(tx, "user_id = ?", userID); err != nil {
		return err
	}
	for _, model := range []interface{}{&models.Budget{}, &models.Goal{}, &models.Notification{}, &models.Account{}} {
		if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Where("id = ?", userID).Delete(&models.User{}).Error
}
