package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// SummaryCards renders the dashboard's income/expenses/net totals strip.
func SummaryCards(theme themes.Theme, s model.Summary) string {
	net := theme.Income
	if s.NetIncome < 0 {
		net = theme.Expense
	}

	cards := []string{
		summaryCard(theme, "Total Income", theme.Income.Render(money(s.TotalIncome))),
		summaryCard(theme, "Total Expenses", theme.Expense.Render(money(s.TotalExpenses))),
		summaryCard(theme, "Net Income", net.Render(money(s.NetIncome))),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func summaryCard(theme themes.Theme, label, value string) string {
	return theme.RoundedBox.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		theme.Subtitle.Render(label),
		value,
	))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
