package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
)

// Source names the input kind a summary was computed from. It selects
// the title line of the rendered summary.
type Source string

const (
	SourceExcel Source = "Excel"
	SourceImage Source = "Image"
	SourceText  Source = "Text"
)

var faTitles = map[Source]string{
	SourceExcel: "📊 خلاصه مالی شما (Excel):",
	SourceImage: "📊 خلاصه مالی از روی تصویر:",
	SourceText:  "📊 خلاصه مالی از روی متن:",
}

var enTitles = map[Source]string{
	SourceExcel: "📊 Your finance summary (Excel):",
	SourceImage: "📊 Finance summary from image:",
	SourceText:  "📊 Finance summary from text:",
}

// FormatSummary renders a finance summary as display text in the given
// language, the way the bot sends it to the user.
func FormatSummary(summary dto.FinanceSummary, lang string, source Source) string {
	if Pick(lang, LangEn) == LangFa {
		return formatFa(summary, source)
	}
	return formatEn(summary, source)
}

func formatFa(summary dto.FinanceSummary, source Source) string {
	p := message.NewPrinter(language.Persian)

	title, ok := faTitles[source]
	if !ok {
		title = "📊 خلاصه مالی:"
	}

	lines := []string{
		title,
		p.Sprintf("• مجموع هزینه‌ها: %.0f", summary.TotalExpenses),
		p.Sprintf("• مجموع درآمدها: %.0f", summary.TotalIncome),
		p.Sprintf("• جریان نقدی خالص: %.0f", summary.NetCashFlow),
		"• سطح ریسک: " + string(summary.RiskLevel),
		"",
		"📂 تقسیم هزینه‌ها:",
	}
	for _, cat := range sortedCategories(summary.CategoryBreakdown) {
		lines = append(lines, p.Sprintf("- %s: %.0f", string(cat), summary.CategoryBreakdown[cat]))
	}

	lines = append(lines, "", "🔎 نکات کلیدی:")
	for _, ins := range summary.Insights {
		lines = append(lines, "- "+ins)
	}

	lines = append(lines, "", "✅ پیشنهادها:")
	for _, act := range summary.Actions {
		lines = append(lines, "- "+act)
	}

	return strings.Join(lines, "\n")
}

func formatEn(summary dto.FinanceSummary, source Source) string {
	p := message.NewPrinter(language.English)

	title, ok := enTitles[source]
	if !ok {
		title = "📊 Finance summary:"
	}

	lines := []string{
		title,
		p.Sprintf("• Total expenses: %.0f", summary.TotalExpenses),
		p.Sprintf("• Total income: %.0f", summary.TotalIncome),
		p.Sprintf("• Net cash flow: %.0f", summary.NetCashFlow),
		"• Risk level: " + string(summary.RiskLevel),
		"",
		"📂 Expense breakdown:",
	}
	for _, cat := range sortedCategories(summary.CategoryBreakdown) {
		lines = append(lines, p.Sprintf("- %s: %.0f", string(cat), summary.CategoryBreakdown[cat]))
	}

	lines = append(lines, "", "🔎 Insights:")
	for _, ins := range summary.Insights {
		lines = append(lines, "- "+ins)
	}

	lines = append(lines, "", "✅ Actions:")
	for _, act := range summary.Actions {
		lines = append(lines, "- "+act)
	}

	return strings.Join(lines, "\n")
}

// sortedCategories keeps the rendered breakdown stable across calls.
func sortedCategories(breakdown map[dto.Category]float64) []dto.Category {
	cats := make([]dto.Category, 0, len(breakdown))
	for cat := range breakdown {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
