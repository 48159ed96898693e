package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// RecentTransactions renders the dashboard's most-recent list.
func RecentTransactions(theme themes.Theme, txns []model.Transaction) string {
	if len(txns) == 0 {
		return EmptyState(theme, "No recent transactions", "Add one from the transactions view.")
	}

	var lines []string
	for _, t := range txns {
		lines = append(lines, transactionLine(theme, t, false))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// TransactionListModel is the scrollable, filterable full list with a
// selection cursor for the delete flow.
type TransactionListModel struct {
	theme  themes.Theme
	txns   []model.Transaction
	cursor int
	height int
}

// NewTransactionList creates an empty list.
func NewTransactionList(theme themes.Theme) TransactionListModel {
	return TransactionListModel{theme: theme, height: 20}
}

// SetTransactions replaces the list contents and clamps the cursor.
func (m *TransactionListModel) SetTransactions(txns []model.Transaction) {
	m.txns = txns
	if m.cursor >= len(txns) {
		m.cursor = len(txns) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Len returns the number of listed transactions.
func (m TransactionListModel) Len() int { return len(m.txns) }

// MoveCursor shifts the selection, clamped to the list bounds.
func (m *TransactionListModel) MoveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.txns) {
		m.cursor = len(m.txns) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the transaction under the cursor.
func (m TransactionListModel) Selected() (model.Transaction, bool) {
	if len(m.txns) == 0 {
		return model.Transaction{}, false
	}
	return m.txns[m.cursor], true
}

// Resize sets the number of visible rows.
func (m *TransactionListModel) Resize(_, height int) {
	if height > 0 {
		m.height = height
	}
}

// View renders the list with the cursor row highlighted.
func (m TransactionListModel) View() string {
	if len(m.txns) == 0 {
		return EmptyState(m.theme, "No transactions found", "Try adjusting filters.")
	}

	first, last := viewport(m.cursor, len(m.txns), m.height)
	var lines []string
	for i := first; i < last; i++ {
		line := transactionLine(m.theme, m.txns[i], true)
		if i == m.cursor {
			line = m.theme.Selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func transactionLine(theme themes.Theme, t model.Transaction, showKind bool) string {
	signed := t.Signed()
	amountStyle := theme.Income
	sign := "+"
	if signed < 0 {
		amountStyle = theme.Expense
		sign = "-"
		signed = -signed
	}

	meta := fmt.Sprintf("%s • %s", t.Date, t.Category)
	if showKind {
		meta = fmt.Sprintf("%s • %s", meta, t.Type)
	}

	return fmt.Sprintf("%s  %s  %s",
		amountStyle.Render(fmt.Sprintf("%s%s", sign, money(signed))),
		theme.Normal.Render(t.Description),
		theme.Muted.Render(meta),
	)
}

// viewport returns the half-open row range keeping cursor visible.
func viewport(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	first := cursor - height/2
	if first < 0 {
		first = 0
	}
	if first+height > total {
		first = total - height
	}
	return first, first + height
}
