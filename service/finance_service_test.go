package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

func TestSummarize(t *testing.T) {
	svc := NewFinanceService()

	records := []dto.TransactionRecord{
		{Description: "groceries", Amount: 300000, Type: dto.TypeExpense, Category: dto.CategoryFood},
		{Description: "cinema", Amount: 200000, Type: dto.TypeExpense, Category: dto.CategoryEntertainment},
		{Description: "salary", Amount: 1000000, Type: dto.TypeIncome},
	}

	summary := svc.Summarize(records)

	assert.Equal(t, 500000.0, summary.TotalExpenses)
	assert.Equal(t, 1000000.0, summary.TotalIncome)
	assert.Equal(t, 500000.0, summary.NetCashFlow)
	assert.Equal(t, 300000.0, summary.CategoryBreakdown[dto.CategoryFood])
	assert.Equal(t, 200000.0, summary.CategoryBreakdown[dto.CategoryEntertainment])
	assert.InDelta(t, 0.6, summary.EssentialRatio, 1e-9)
	assert.InDelta(t, 0.4, summary.NonEssentialRatio, 1e-9)
	// Saving rate 0.5 is comfortably low risk.
	assert.Equal(t, dto.RiskLow, summary.RiskLevel)
	// Discretionary share above 30% fires the insight and the action.
	assert.Contains(t, summary.Insights, "Non-essential spending is relatively high.")
	assert.Contains(t, summary.Actions, "Set a monthly cap for non-essential categories (e.g., entertainment).")
}

func TestSummarizeEmpty(t *testing.T) {
	svc := NewFinanceService()

	summary := svc.Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.Equal(t, 0.0, summary.TotalIncome)
	assert.Equal(t, 0.0, summary.NetCashFlow)
	assert.Equal(t, 0.0, summary.EssentialRatio)
	assert.Equal(t, 0.0, summary.NonEssentialRatio)
	assert.Empty(t, summary.CategoryBreakdown)
	assert.Equal(t, dto.RiskHigh, summary.RiskLevel)
	assert.NotEmpty(t, summary.Insights)
	assert.NotEmpty(t, summary.Actions)
}

func TestSummarizeOverspending(t *testing.T) {
	svc := NewFinanceService()

	records := []dto.TransactionRecord{
		{Description: "rent", Amount: 900000, Type: dto.TypeExpense, Category: dto.CategoryHousing},
		{Description: "salary", Amount: 600000, Type: dto.TypeIncome},
	}

	summary := svc.Summarize(records)

	assert.Equal(t, dto.RiskHigh, summary.RiskLevel)
	assert.Contains(t, summary.Insights, "You are spending more than your income this period.")
	assert.Contains(t, summary.Actions, "Aim to increase your saving rate to at least 10% of your income.")
}

func TestSummarizeRiskLevels(t *testing.T) {
	svc := NewFinanceService()

	tests := []struct {
		name     string
		expense  float64
		income   float64
		expected dto.RiskLevel
	}{
		{"no income", 100, 0, dto.RiskHigh},
		{"saving rate 50%", 500, 1000, dto.RiskLow},
		{"saving rate 20%", 800, 1000, dto.RiskLow},
		{"saving rate 10%", 900, 1000, dto.RiskMedium},
		{"saving rate 2%", 980, 1000, dto.RiskHigh},
	}

	for _, tc := range tests {
		records := []dto.TransactionRecord{
			{Description: "spend", Amount: tc.expense, Type: dto.TypeExpense, Category: dto.CategoryOther},
			{Description: "earn", Amount: tc.income, Type: dto.TypeIncome},
		}
		summary := svc.Summarize(records)
		assert.Equal(t, tc.expected, summary.RiskLevel, tc.name)
	}
}

func TestSummarizeTypeCaseInsensitive(t *testing.T) {
	svc := NewFinanceService()

	records := []dto.TransactionRecord{
		{Description: "a", Amount: 100, Type: "expense", Category: dto.CategoryOther},
		{Description: "b", Amount: 200, Type: "INCOME"},
		{Description: "c", Amount: 999, Type: "transfer"},
	}

	summary := svc.Summarize(records)

	assert.Equal(t, 100.0, summary.TotalExpenses)
	assert.Equal(t, 200.0, summary.TotalIncome)
}

func TestSummarizeRatiosWithinBounds(t *testing.T) {
	svc := NewFinanceService()

	records := []dto.TransactionRecord{
		{Description: "nan", Amount: 120000, Type: dto.TypeExpense, Category: dto.CategoryFood},
		{Description: "game", Amount: 45000, Type: dto.TypeExpense, Category: dto.CategoryEntertainment},
	}

	summary := svc.Summarize(records)

	assert.GreaterOrEqual(t, summary.EssentialRatio, 0.0)
	assert.LessOrEqual(t, summary.EssentialRatio, 1.0)
	assert.GreaterOrEqual(t, summary.NonEssentialRatio, 0.0)
	assert.LessOrEqual(t, summary.NonEssentialRatio, 1.0)
	assert.InDelta(t, 1.0, summary.EssentialRatio+summary.NonEssentialRatio, 1e-9)
}

func TestCategorize(t *testing.T) {
	svc := NewFinanceService()

	records := []dto.TransactionRecord{
		{Description: "تاکسی به فرودگاه", Amount: 90000, Type: dto.TypeExpense},
		{Description: "unknown stuff", Amount: 10000, Type: dto.TypeExpense},
		{Description: "already set", Amount: 5000, Type: dto.TypeExpense, Category: dto.CategoryHealth},
	}

	categorized := svc.Categorize(records)

	assert.Equal(t, dto.CategoryTransport, categorized[0].Category)
	assert.Equal(t, dto.CategoryOther, categorized[1].Category)
	assert.Equal(t, dto.CategoryHealth, categorized[2].Category)
	// Input records stay untouched.
	assert.Equal(t, dto.Category(""), records[0].Category)
}
