package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

// formKind selects which entry form is open, if any.
type formKind int

const (
	formNone formKind = iota
	formAddTransaction
	formAddBudget
	formFilter
)

// Field indices per form.
const (
	txnFieldAmount = iota
	txnFieldDescription
	txnFieldCategory
	txnFieldDate
)

const (
	budgetFieldCategory = iota
	budgetFieldAmount
)

const (
	filterFieldStart = iota
	filterFieldEnd
	filterFieldCategory
	filterFieldKind
)

// formModel is a small focus-cycling stack of text inputs plus the enum
// choices that cycle rather than type. The forms are the producers of
// payloads for the write endpoints; the service remains the validator of
// record and the client only parses what it needs to build the request.
type formModel struct {
	kind         formKind
	inputs       []textinput.Model
	labels       []string
	vocabulary   []string
	vocabAll     []string
	vocabExpense []string
	suggestion   string
	txnKind      model.TransactionKind
	period       model.BudgetPeriod
	focus        int
	catField     int
}

func newTransactionForm(all, expense []string, now time.Time) formModel {
	f := formModel{
		kind:         formAddTransaction,
		labels:       []string{"Amount", "Description", "Category", "Date"},
		vocabulary:   expense,
		vocabAll:     all,
		vocabExpense: expense,
		txnKind:      model.KindExpense,
		catField:     txnFieldCategory,
	}
	f.inputs = makeInputs(len(f.labels))
	f.inputs[txnFieldAmount].Placeholder = "0.00"
	f.inputs[txnFieldDescription].Placeholder = "What was it?"
	f.inputs[txnFieldCategory].Placeholder = "Category"
	f.inputs[txnFieldDate].SetValue(now.Format(model.DateLayout))
	f.inputs[0].Focus()
	return f
}

func newBudgetForm(vocabulary []string) formModel {
	f := formModel{
		kind:       formAddBudget,
		labels:     []string{"Category", "Amount"},
		vocabulary: vocabulary,
		period:     model.PeriodMonthly,
		catField:   budgetFieldCategory,
	}
	f.inputs = makeInputs(len(f.labels))
	f.inputs[budgetFieldCategory].Placeholder = "Category"
	f.inputs[budgetFieldAmount].Placeholder = "0.00"
	f.inputs[0].Focus()
	return f
}

func newFilterForm(vocabulary []string, current api.TransactionFilter) formModel {
	f := formModel{
		kind:       formFilter,
		labels:     []string{"Start date", "End date", "Category", "Kind"},
		vocabulary: vocabulary,
		catField:   filterFieldCategory,
	}
	f.inputs = makeInputs(len(f.labels))
	f.inputs[filterFieldStart].SetValue(current.StartDate)
	f.inputs[filterFieldStart].Placeholder = "YYYY-MM-DD"
	f.inputs[filterFieldEnd].SetValue(current.EndDate)
	f.inputs[filterFieldEnd].Placeholder = "YYYY-MM-DD"
	f.inputs[filterFieldCategory].SetValue(current.Category)
	f.inputs[filterFieldKind].SetValue(string(current.Kind))
	f.inputs[filterFieldKind].Placeholder = "income | expense | blank"
	f.inputs[0].Focus()
	return f
}

func makeInputs(n int) []textinput.Model {
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 30
		inputs[i] = ti
	}
	return inputs
}

// Update routes a key to the form. The returned bool reports whether the
// form submitted on this key.
func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch key.String() {
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return f, nil, true
		}
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "tab":
		if f.focus == f.catField && f.suggestion != "" {
			f.inputs[f.catField].SetValue(f.suggestion)
			f.inputs[f.catField].CursorEnd()
			f.suggestion = ""
			return f, nil, false
		}
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "shift+tab":
		f.setFocus(f.focus - 1)
		return f, nil, false
	case "ctrl+t":
		if f.kind == formAddTransaction {
			// The suggestion vocabulary follows the kind: expense entries
			// match against expense categories only.
			if f.txnKind == model.KindExpense {
				f.txnKind = model.KindIncome
				f.vocabulary = f.vocabAll
			} else {
				f.txnKind = model.KindExpense
				f.vocabulary = f.vocabExpense
			}
			f.suggestion, _ = closestCategory(f.inputs[f.catField].Value(), f.vocabulary)
			return f, nil, false
		}
	case "ctrl+p":
		if f.kind == formAddBudget {
			f.period = nextPeriod(f.period)
			return f, nil, false
		}
	}

	return f.updateInputs(msg)
}

func (f formModel) updateInputs(msg tea.Msg) (formModel, tea.Cmd, bool) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	if f.focus == f.catField {
		f.suggestion, _ = closestCategory(f.inputs[f.catField].Value(), f.vocabulary)
	}
	return f, cmd, false
}

func (f *formModel) setFocus(idx int) {
	if idx < 0 {
		idx = len(f.inputs) - 1
	}
	if idx >= len(f.inputs) {
		idx = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func nextPeriod(p model.BudgetPeriod) model.BudgetPeriod {
	switch p {
	case model.PeriodWeekly:
		return model.PeriodMonthly
	case model.PeriodMonthly:
		return model.PeriodYearly
	default:
		return model.PeriodWeekly
	}
}

// transactionRequest assembles the POST payload from the form fields.
func (f formModel) transactionRequest() (model.CreateTransactionRequest, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[txnFieldAmount].Value()), 64)
	if err != nil {
		return model.CreateTransactionRequest{}, fmt.Errorf("amount is not a number: %w", err)
	}
	return model.CreateTransactionRequest{
		Type:        f.txnKind,
		Amount:      amount,
		Description: strings.TrimSpace(f.inputs[txnFieldDescription].Value()),
		Category:    strings.TrimSpace(f.inputs[txnFieldCategory].Value()),
		Date:        strings.TrimSpace(f.inputs[txnFieldDate].Value()),
	}, nil
}

// budgetRequest assembles the POST payload from the form fields.
func (f formModel) budgetRequest() (model.CreateBudgetRequest, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[budgetFieldAmount].Value()), 64)
	if err != nil {
		return model.CreateBudgetRequest{}, fmt.Errorf("amount is not a number: %w", err)
	}
	return model.CreateBudgetRequest{
		Category: strings.TrimSpace(f.inputs[budgetFieldCategory].Value()),
		Amount:   amount,
		Period:   f.period,
	}, nil
}

// filterValue assembles the list filter from the form fields.
func (f formModel) filterValue() api.TransactionFilter {
	return api.TransactionFilter{
		StartDate: strings.TrimSpace(f.inputs[filterFieldStart].Value()),
		EndDate:   strings.TrimSpace(f.inputs[filterFieldEnd].Value()),
		Category:  strings.TrimSpace(f.inputs[filterFieldCategory].Value()),
		Kind:      model.TransactionKind(strings.TrimSpace(f.inputs[filterFieldKind].Value())),
	}
}

// View renders the open form.
func (f formModel) View(theme themes.Theme) string {
	var title string
	var extra string
	switch f.kind {
	case formAddTransaction:
		title = "Add Transaction"
		extra = fmt.Sprintf("Kind: %s  (ctrl+t to toggle)", f.txnKind)
	case formAddBudget:
		title = "Add Budget"
		extra = fmt.Sprintf("Period: %s  (ctrl+p to cycle)", f.period)
	case formFilter:
		title = "Filter Transactions"
	case formNone:
		return ""
	}

	lines := []string{theme.Title.Render(title)}
	if extra != "" {
		lines = append(lines, theme.Subtitle.Render(extra))
	}
	for i, in := range f.inputs {
		label := fmt.Sprintf("%-12s", f.labels[i])
		lines = append(lines, fmt.Sprintf("%s %s", theme.Muted.Render(label), in.View()))
		if i == f.catField && f.suggestion != "" && f.focus == f.catField {
			lines = append(lines, theme.Muted.Render(fmt.Sprintf("%-12s did you mean %q? (tab)", "", f.suggestion)))
		}
	}
	lines = append(lines, "", theme.Muted.Render("enter: next/submit • esc: cancel"))

	return theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
