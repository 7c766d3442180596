package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExpensePDF(t *testing.T) {
	r := &ExpenseReport{
		Username:     "alice",
		GeneratedAt:  time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		TotalIncome:  decimal.RequireFromString("2500.00"),
		TotalExpense: decimal.RequireFromString("300.00"),
		Categories: []CategoryLine{
			{Category: "Food", Total: decimal.RequireFromString("200.00")},
			{Category: "Transport", Total: decimal.RequireFromString("100.00")},
		},
	}

	out, err := BuildExpensePDF(r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF document")
	assert.Greater(t, len(out), 500)
}

func TestBuildExpensePDF_NoCategories(t *testing.T) {
	out, err := BuildExpensePDF(&ExpenseReport{Username: "bob", GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestShare(t *testing.T) {
	r := &ExpenseReport{Categories: []CategoryLine{
		{Category: "A", Total: decimal.NewFromInt(60)},
		{Category: "B", Total: decimal.NewFromInt(40)},
	}}
	assert.Equal(t, "60.0", r.Share(r.Categories[0]).StringFixed(1))
	assert.Equal(t, "40.0", r.Share(r.Categories[1]).StringFixed(1))

	empty := &ExpenseReport{}
	assert.True(t, empty.Share(CategoryLine{Total: decimal.NewFromInt(5)}).IsZero())
}
