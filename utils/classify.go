package utils

import (
	"strings"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

var incomeKeywords = []string{
	"واریز", "دریافت", "فروش", "درآمد",
	"deposit", "income", "salary",
}

var expenseKeywords = []string{
	"برداشت", "خرید", "هزینه", "پرداخت",
	"withdraw", "purchase", "expense",
}

// ClassifyType assigns Income or Expense from keyword signals. The
// expense scan runs after the income scan and overwrites its result,
// so a text containing both kinds of keyword classifies as Expense.
// This last-check-wins order is load-bearing, keep it.
func ClassifyType(text string) dto.TransactionType {
	txType := dto.TypeExpense

	for _, w := range incomeKeywords {
		if strings.Contains(text, w) {
			txType = dto.TypeIncome
			break
		}
	}
	for _, w := range expenseKeywords {
		if strings.Contains(text, w) {
			txType = dto.TypeExpense
			break
		}
	}
	return txType
}

type categoryRule struct {
	category dto.Category
	keywords []string
}

// Tested in order, first match wins.
var categoryRules = []categoryRule{
	{dto.CategoryFood, []string{"نان", "رستوران", "خوراک", "کافه", "food", "restaurant", "cafe"}},
	{dto.CategoryTransport, []string{"بنزین", "تاکسی", "اسنپ", "مترو", "transport", "taxi", "fuel"}},
	{dto.CategoryHousing, []string{"اجاره", "رهن", "rent", "mortgage"}},
	{dto.CategoryHealth, []string{"بیمه", "بیمارستان", "دارو", "health", "hospital", "medicine"}},
	{dto.CategoryBills, []string{"نت", "اینترنت", "قبض", "آب", "برق", "گاز", "bill"}},
	{dto.CategoryEntertainment, []string{"سینما", "تفریح", "game", "netflix", "entertainment"}},
}

// ClassifyCategory maps a description to a spending category by
// case-insensitive keyword lookup. No match means Other.
func ClassifyCategory(description string) dto.Category {
	text := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return dto.CategoryOther
}
