package service

import (
	"math"
	"strings"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/utils"
)

// Expense categories counted as essential spending.
var essentialCategories = map[dto.Category]bool{
	dto.CategoryFood:    true,
	dto.CategoryHousing: true,
	dto.CategoryBills:   true,
	dto.CategoryHealth:  true,
}

// Saving-rate thresholds for risk scoring.
const (
	lowRiskSavingRate    = 0.20
	mediumRiskSavingRate = 0.05
)

// Discretionary spending above this share of total expenses triggers
// the overspend insight and action.
const nonEssentialWarnRatio = 0.30

// FinanceService aggregates transaction records into a finance summary.
type FinanceService struct{}

func NewFinanceService() *FinanceService {
	return &FinanceService{}
}

// Categorize returns a copy of the records with every empty Category
// filled in from the description. Imported rows keep whatever category
// the spreadsheet carried.
func (s *FinanceService) Categorize(records []dto.TransactionRecord) []dto.TransactionRecord {
	out := make([]dto.TransactionRecord, len(records))
	for i, rec := range records {
		if rec.Category == "" {
			rec.Category = utils.ClassifyCategory(rec.Description)
		}
		out[i] = rec
	}
	return out
}

// Summarize computes totals, the category breakdown, spending ratios,
// a risk level and textual insights over the given records. It never
// fails: an empty input produces zero totals and High risk.
func (s *FinanceService) Summarize(records []dto.TransactionRecord) dto.FinanceSummary {
	summary := dto.FinanceSummary{
		CategoryBreakdown: make(map[dto.Category]float64),
	}

	for _, rec := range records {
		amount := rec.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}

		switch strings.ToLower(string(rec.Type)) {
		case "expense":
			summary.TotalExpenses += amount
			cat := rec.Category
			if cat == "" {
				cat = dto.CategoryOther
			}
			summary.CategoryBreakdown[cat] += amount
		case "income":
			summary.TotalIncome += amount
		}
	}

	summary.NetCashFlow = summary.TotalIncome - summary.TotalExpenses

	var essentialExpense float64
	for cat, amount := range summary.CategoryBreakdown {
		if essentialCategories[cat] {
			essentialExpense += amount
		}
	}
	if summary.TotalExpenses > 0 {
		summary.EssentialRatio = essentialExpense / summary.TotalExpenses
		summary.NonEssentialRatio = (summary.TotalExpenses - essentialExpense) / summary.TotalExpenses
	}

	summary.RiskLevel = riskLevel(summary.TotalIncome, summary.NetCashFlow)
	summary.Insights = buildInsights(summary)
	summary.Actions = buildActions(summary)

	return summary
}

func riskLevel(totalIncome, netCashFlow float64) dto.RiskLevel {
	if totalIncome <= 0 {
		return dto.RiskHigh
	}
	savingRate := netCashFlow / totalIncome
	switch {
	case savingRate >= lowRiskSavingRate:
		return dto.RiskLow
	case savingRate >= mediumRiskSavingRate:
		return dto.RiskMedium
	default:
		return dto.RiskHigh
	}
}

func buildInsights(summary dto.FinanceSummary) []string {
	var insights []string
	if summary.TotalExpenses > summary.TotalIncome {
		insights = append(insights, "You are spending more than your income this period.")
	}
	if summary.NonEssentialRatio > nonEssentialWarnRatio {
		insights = append(insights, "Non-essential spending is relatively high.")
	}
	if len(insights) == 0 {
		insights = append(insights, "Your spending pattern is relatively balanced.")
	}
	return insights
}

func buildActions(summary dto.FinanceSummary) []string {
	var actions []string
	if summary.NonEssentialRatio > nonEssentialWarnRatio {
		actions = append(actions, "Set a monthly cap for non-essential categories (e.g., entertainment).")
	}
	if summary.RiskLevel == dto.RiskHigh {
		actions = append(actions, "Aim to increase your saving rate to at least 10% of your income.")
	}
	if len(actions) == 0 {
		actions = append(actions, "Keep tracking your expenses monthly to maintain this balance.")
	}
	return actions
}
