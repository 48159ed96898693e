package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/metrics"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// BarBreakdown renders an expense-by-category breakdown as horizontal bars,
// largest first. It is the terminal stand-in for the dashboard's doughnut
// chart.
type BarBreakdown struct {
	theme  themes.Theme
	totals []metrics.CategoryTotal
}

// NewBarBreakdown creates a breakdown chart over the given totals.
func NewBarBreakdown(totals []metrics.CategoryTotal, theme themes.Theme) *BarBreakdown {
	return &BarBreakdown{totals: totals, theme: theme}
}

// Segments returns the number of categories drawn.
func (b *BarBreakdown) Segments() int {
	if b.totals == nil {
		return 0
	}
	return len(b.totals)
}

// Render draws the bars.
func (b *BarBreakdown) Render(width, _ int) string {
	if len(b.totals) == 0 {
		return b.theme.Subtitle.Render("No expenses yet")
	}

	labelWidth := 12
	barSpace := width - labelWidth - 14
	if barSpace < 5 {
		barSpace = 5
	}

	max := b.totals[0].Amount
	var lines []string
	for _, total := range b.totals {
		barLen := 0
		if max > 0 {
			barLen = int(total.Amount / max * float64(barSpace))
		}
		bar := strings.Repeat("█", barLen)
		line := fmt.Sprintf("%-*s %s %s",
			labelWidth,
			truncate(total.Category, labelWidth),
			lipgloss.NewStyle().Foreground(b.theme.Primary).Render(bar),
			b.theme.Normal.Render(fmt.Sprintf("$%.2f", total.Amount)),
		)
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Dispose releases the chart's dataset.
func (b *BarBreakdown) Dispose() {
	b.totals = nil
}

// TrendLines renders the month-by-month income/expense/net series as paired
// bars with a signed net figure, oldest month first.
type TrendLines struct {
	theme  themes.Theme
	points []model.TrendPoint
}

// NewTrendLines creates a trend chart over the given series.
func NewTrendLines(points []model.TrendPoint, theme themes.Theme) *TrendLines {
	return &TrendLines{points: points, theme: theme}
}

// Months returns the number of months drawn.
func (t *TrendLines) Months() int {
	if t.points == nil {
		return 0
	}
	return len(t.points)
}

// Render draws the series.
func (t *TrendLines) Render(width, _ int) string {
	if len(t.points) == 0 {
		return t.theme.Subtitle.Render("No trend data yet")
	}

	barSpace := width - 34
	if barSpace < 5 {
		barSpace = 5
	}
	extent := metrics.TrendExtent(t.points)

	incomeStyle := lipgloss.NewStyle().Foreground(t.theme.Success)
	expenseStyle := lipgloss.NewStyle().Foreground(t.theme.Warning)

	var lines []string
	for _, p := range t.points {
		lines = append(lines, fmt.Sprintf("%s  %s %s",
			t.theme.Bold.Render(p.Month),
			incomeStyle.Render(scaleBar(p.Income, extent, barSpace)),
			t.theme.Normal.Render(fmt.Sprintf("+$%.2f", p.Income)),
		))
		netStyle := incomeStyle
		if p.Net < 0 {
			netStyle = lipgloss.NewStyle().Foreground(t.theme.Error)
		}
		lines = append(lines, fmt.Sprintf("%s  %s %s  net %s",
			strings.Repeat(" ", 7),
			expenseStyle.Render(scaleBar(p.Expenses, extent, barSpace)),
			t.theme.Normal.Render(fmt.Sprintf("-$%.2f", p.Expenses)),
			netStyle.Render(fmt.Sprintf("$%.2f", p.Net)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Dispose releases the chart's dataset.
func (t *TrendLines) Dispose() {
	t.points = nil
}

func scaleBar(value, extent float64, space int) string {
	if extent <= 0 || value <= 0 {
		return "·"
	}
	n := int(value / extent * float64(space))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("▇", n)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}
