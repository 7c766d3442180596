package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestGetUserNotifications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewNotificationService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		n := models.Notification{UserID: user.ID, Title: title, Message: "m", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := db.Create(&n).Error; err != nil {
			t.Fatalf("failed to create notification: %v", err)
		}
	}
	if err := db.Create(&models.Notification{UserID: other.ID, Title: "other", Message: "m"}).Error; err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}

	result, err := svc.GetUserNotifications(user.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 3 {
		t.Fatalf("expected 3 notifications, got %d", result.TotalItems)
	}
	if result.Data[0].Title != "third" || result.Data[2].Title != "first" {
		t.Errorf("expected newest first, got %s..%s", result.Data[0].Title, result.Data[2].Title)
	}
}
