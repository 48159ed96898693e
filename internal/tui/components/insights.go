package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// InsightsPanel renders the savings rate, top spending categories and, only
// when present, the budget alerts section.
func InsightsPanel(theme themes.Theme, ins model.Insights) string {
	sections := []string{
		theme.Subtitle.Render("Savings Rate"),
		theme.Normal.Render(fmt.Sprintf("%.1f%% of income saved", ins.SavingsRate)),
		"",
		theme.Subtitle.Render("Top Spending Categories"),
		topCategoriesList(theme, ins.TopSpendingCategories),
	}

	if len(ins.BudgetAlerts) > 0 {
		sections = append(sections, "", theme.Subtitle.Render("Budget Alerts"))
		for _, alert := range ins.BudgetAlerts {
			sections = append(sections, theme.StatusError.Render("• "+alert))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func topCategoriesList(theme themes.Theme, cats []model.CategoryAmount) string {
	if len(cats) == 0 {
		return theme.Muted.Render("No expenses yet.")
	}
	var lines []string
	for _, c := range cats {
		lines = append(lines, theme.Normal.Render(fmt.Sprintf("• %s: %s", c.Category, money(c.Amount))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Recommendations renders the recommendation list, or its empty state.
func Recommendations(theme themes.Theme, recs []string) string {
	if len(recs) == 0 {
		return EmptyState(theme, "No recommendations right now", "")
	}
	var lines []string
	for _, r := range recs {
		lines = append(lines, fmt.Sprintf("%s %s",
			theme.StatusInfo.Render("▪"),
			theme.Normal.Render(r),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
