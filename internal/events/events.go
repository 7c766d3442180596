// Package events hands domain events to downstream consumers. Publishing is
// best-effort: callers log failures and carry on.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RoutingKeyBudgetExceeded is the routing key (and queue name) for
// BudgetExceededEvent messages.
const RoutingKeyBudgetExceeded = "budget.exceeded"

// BudgetExceededEvent is emitted after a "Budget Exceeded" notification has
// been stored.
type BudgetExceededEvent struct {
	NotificationID string          `json:"notification_id"`
	UserID         string          `json:"user_id"`
	BudgetID       string          `json:"budget_id"`
	CategoryID     string          `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// ToJSON converts the event to JSON bytes
func (e *BudgetExceededEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// BudgetExceededEventFromJSON decodes an event published by ToJSON.
func BudgetExceededEventFromJSON(data []byte) (*BudgetExceededEvent, error) {
	var e BudgetExceededEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Publisher delivers events to whatever sits downstream.
type Publisher interface {
	PublishBudgetExceeded(ctx context.Context, event *BudgetExceededEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBudgetExceeded(context.Context, *BudgetExceededEvent) error { return nil }
func (NopPublisher) Close() error                                                      { return nil }
