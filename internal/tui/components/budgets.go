package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/metrics"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// BudgetSummary renders the configured budget targets.
func BudgetSummary(theme themes.Theme, budgets []model.Budget) string {
	if len(budgets) == 0 {
		return EmptyState(theme, "No budgets yet", "Create one with the budget form.")
	}

	var lines []string
	for _, b := range budgets {
		lines = append(lines, fmt.Sprintf("%s  %s",
			theme.Bold.Render(money(b.Amount)),
			theme.Subtitle.Render(fmt.Sprintf("%s (%s)", b.Category, b.Period)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

const budgetBarWidth = 30

// BudgetStatusList renders the spent-versus-target report per category,
// alphabetical so repeated renders are stable. The bar width is clamped to
// [0, 100] but the "Used" figure always shows the raw percentage.
func BudgetStatusList(theme themes.Theme, status map[string]model.BudgetStatus) string {
	if len(status) == 0 {
		return EmptyState(theme, "No budget status", "")
	}

	categories := make([]string, 0, len(status))
	for cat := range status {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var blocks []string
	for _, cat := range categories {
		blocks = append(blocks, budgetStatusItem(theme, cat, status[cat]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func budgetStatusItem(theme themes.Theme, category string, s model.BudgetStatus) string {
	clamped := metrics.ClampPercent(s.PercentageUsed)

	fillColor := theme.Success
	switch {
	case s.OverBudget:
		fillColor = theme.Error
	case clamped >= 80:
		fillColor = theme.Warning
	}

	filled := int(clamped / 100 * budgetBarWidth)
	bar := lipgloss.NewStyle().Foreground(fillColor).Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", budgetBarWidth-filled))

	remaining := fmt.Sprintf("Remaining: %s", money(s.Remaining))
	if s.OverBudget {
		remaining = theme.StatusError.Render(fmt.Sprintf("Over by $%.2f", -s.Remaining))
	}

	header := fmt.Sprintf("%s  %s",
		theme.Bold.Render(fmt.Sprintf("%s • %s", category, s.Period)),
		theme.Normal.Render(fmt.Sprintf("%s / %s", money(s.Spent), money(s.BudgetAmount))),
	)
	stats := theme.Muted.Render(fmt.Sprintf("Used: %.1f%%  %s  %s → %s",
		s.PercentageUsed, remaining, s.StartDate, s.EndDate))

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, stats, "")
}
