package events

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetExceededEvent_JSON(t *testing.T) {
	ev := &BudgetExceededEvent{
		NotificationID: "n1",
		UserID:         "u1",
		BudgetID:       "b1",
		CategoryID:     "c1",
		CategoryName:   "Food",
		Limit:          decimal.RequireFromString("100.00"),
		Spent:          decimal.RequireFromString("150.00"),
		OccurredAt:     time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
	}

	body, err := ev.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"category_name":"Food"`)

	decoded, err := BudgetExceededEventFromJSON(body)
	require.NoError(t, err)
	assert.True(t, decoded.Spent.Equal(ev.Spent))
	assert.True(t, decoded.OccurredAt.Equal(ev.OccurredAt))
}

func TestBudgetExceededEventFromJSON_Invalid(t *testing.T) {
	_, err := BudgetExceededEventFromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestNewPublisher_NoURL(t *testing.T) {
	p, err := NewPublisher("", "fintrack.events")
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.PublishBudgetExceeded(context.Background(), &BudgetExceededEvent{}))
	assert.NoError(t, p.Close())
}

func TestNewPublisher_BadURL(t *testing.T) {
	_, err := NewPublisher("http://not-amqp", "fintrack.events")
	assert.Error(t, err)
}
