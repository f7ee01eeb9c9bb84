package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

func sampleSummary() dto.FinanceSummary {
	return dto.FinanceSummary{
		TotalExpenses: 500000,
		TotalIncome:   800000,
		NetCashFlow:   300000,
		CategoryBreakdown: map[dto.Category]float64{
			dto.CategoryFood:    300000,
			dto.CategoryHousing: 200000,
		},
		EssentialRatio:    1.0,
		NonEssentialRatio: 0.0,
		RiskLevel:         dto.RiskLow,
		Insights:          []string{"Spending is under control."},
		Actions:           []string{"Keep up the good work!"},
	}
}

func TestFormatSummaryEnglish(t *testing.T) {
	text := FormatSummary(sampleSummary(), LangEn, SourceExcel)

	assert.True(t, strings.HasPrefix(text, "📊 Your finance summary (Excel):"))
	assert.Contains(t, text, "Total expenses: 500,000")
	assert.Contains(t, text, "Risk level: Low")
	assert.Contains(t, text, "- Food:")
	assert.Contains(t, text, "- Spending is under control.")
	assert.Contains(t, text, "- Keep up the good work!")
}

func TestFormatSummaryPersian(t *testing.T) {
	text := FormatSummary(sampleSummary(), LangFa, SourceImage)

	assert.True(t, strings.HasPrefix(text, "📊 خلاصه مالی از روی تصویر:"))
	assert.Contains(t, text, "مجموع هزینه‌ها")
	assert.Contains(t, text, "سطح ریسک: Low")
}

func TestFormatSummaryDefaultTitle(t *testing.T) {
	text := FormatSummary(sampleSummary(), LangEn, "")

	assert.True(t, strings.HasPrefix(text, "📊 Finance summary:"))
}

func TestFormatSummaryStableCategoryOrder(t *testing.T) {
	first := FormatSummary(sampleSummary(), LangEn, SourceText)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FormatSummary(sampleSummary(), LangEn, SourceText))
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, LangEn, Pick("en", "fa"))
	assert.Equal(t, LangFa, Pick("de", "fa"))
	assert.Equal(t, LangFa, Pick("", ""))
}

func TestTranslationLookup(t *testing.T) {
	assert.Equal(t, "No transactions could be extracted from the image.", T("no_transactions_from_image", LangEn))
	assert.NotEmpty(t, T("text_parse_failed", LangFa))
	assert.Empty(t, T("no_such_key", LangEn))
}
