package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/tui/components"
	"github.com/pennyflow/pennyflow/internal/tui/widgets"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderTabs(), m.renderStatusLine()}

	if m.form.kind != formNone {
		sections = append(sections, m.form.View(m.theme))
	} else {
		switch m.view {
		case ViewDashboard:
			sections = append(sections, m.renderDashboard())
		case ViewTransactions:
			sections = append(sections, m.renderTransactions())
		case ViewBudgets:
			sections = append(sections, m.renderBudgets())
		case ViewInsights:
			sections = append(sections, m.renderInsights())
		}
	}

	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(viewCount))
	for v := ViewDashboard; v < viewCount; v++ {
		label := fmt.Sprintf(" %d %s ", int(v)+1, v.Title())
		if v == m.view {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusLine holds the notification slot and the busy indicator. It
// is always one line tall so the body below doesn't jump around.
func (m Model) renderStatusLine() string {
	var parts []string

	if m.inflight > 0 {
		parts = append(parts, m.spinner.View()+m.theme.Muted.Render("loading…"))
	}

	if m.notice.Visible() {
		var style lipgloss.Style
		switch m.notice.level {
		case noticeSuccess:
			style = m.theme.StatusSuccess
		case noticeError:
			style = m.theme.StatusError
		default:
			style = m.theme.StatusInfo
		}
		parts = append(parts, style.Render(m.notice.text))
	}

	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderDashboard() string {
	if !m.haveSummary {
		return components.EmptyState(m.theme, "Loading dashboard", "Summary data hasn't arrived yet")
	}

	sections := []string{components.SummaryCards(m.theme, m.summary)}

	if h, ok := m.registry.Get(widgets.SurfaceCategoryChart); ok {
		sections = append(sections,
			m.theme.Subtitle.Render("Spending by Category"),
			h.Render(m.width, 0),
		)
	}
	if h, ok := m.registry.Get(widgets.SurfaceTrendChart); ok {
		sections = append(sections,
			m.theme.Subtitle.Render("Monthly Trends"),
			h.Render(m.width, 0),
		)
	}

	sections = append(sections,
		m.theme.Subtitle.Render("Recent Transactions"),
		components.RecentTransactions(m.theme, m.recent),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTransactions() string {
	sections := []string{}
	if !m.filter.IsZero() {
		sections = append(sections, m.theme.Muted.Render("Filter: "+describeFilter(m.filter)))
	}
	sections = append(sections, m.txnList.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBudgets() string {
	if !m.haveBudgets && !m.haveStatus {
		return components.EmptyState(m.theme, "Loading budgets", "Budget data hasn't arrived yet")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.BudgetSummary(m.theme, m.budgets),
		m.theme.Subtitle.Render("This Period"),
		components.BudgetStatusList(m.theme, m.budgetStatus),
	)
}

func (m Model) renderInsights() string {
	if !m.haveInsights {
		return components.EmptyState(m.theme, "Loading insights", "Insights haven't arrived yet")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.InsightsPanel(m.theme, m.insights),
		m.theme.Subtitle.Render("Recommendations"),
		components.Recommendations(m.theme, m.insights.Recommendations),
	)
}

func describeFilter(f api.TransactionFilter) string {
	var parts []string
	if f.StartDate != "" {
		parts = append(parts, "from "+f.StartDate)
	}
	if f.EndDate != "" {
		parts = append(parts, "to "+f.EndDate)
	}
	if f.Category != "" {
		parts = append(parts, "category "+f.Category)
	}
	if f.Kind != "" {
		parts = append(parts, string(f.Kind))
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderHelp() string {
	var hints []string
	switch m.view {
	case ViewTransactions:
		hints = []string{"↑/↓ select", "a add", "d delete", "f filter"}
	case ViewBudgets:
		hints = []string{"a add budget"}
	default:
	}
	hints = append(hints, "1-4 views", "tab next", "r refresh", "x dismiss", "q quit")
	return m.theme.Muted.Render(strings.Join(hints, " • "))
}
