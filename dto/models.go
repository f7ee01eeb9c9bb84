package dto

import (
	"fmt"
	"strings"
	"time"
)

// TransactionType distinguishes money going out from money coming in.
type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// Category is a spending category assigned to expense records.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryHousing       Category = "Housing"
	CategoryHealth        Category = "Health"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// RiskLevel is the derived financial risk of a summary period.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Date is a plain year/month/day triple. Receipts carry Jalali dates
// (year 1400+, months like Shahrivar) which must pass through without
// calendar conversion, so time.Time and its Gregorian normalization
// cannot be used here.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	var y, m, day int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &day); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date{Year: y, Month: m, Day: day}
	return nil
}

// TransactionRecord is one financial event extracted from a receipt
// image, a free-form text message or an imported spreadsheet row.
// Records are immutable once built.
type TransactionRecord struct {
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category,omitempty"`
}

// FinanceSummary is the aggregation result over a set of records.
type FinanceSummary struct {
	TotalExpenses     float64              `json:"total_expenses"`
	TotalIncome       float64              `json:"total_income"`
	NetCashFlow       float64              `json:"net_cash_flow"`
	CategoryBreakdown map[Category]float64 `json:"category_breakdown"`
	EssentialRatio    float64              `json:"essential_ratio"`
	NonEssentialRatio float64              `json:"non_essential_ratio"`
	RiskLevel         RiskLevel            `json:"risk_level"`
	Insights          []string             `json:"insights"`
	Actions           []string             `json:"actions"`
}
