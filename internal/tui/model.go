// Package tui is the interactive dashboard for the pennyflow service. It
// owns the view-state machine: one view is active at a time, activation
// triggers exactly that view's load sequence, and results are applied only
// if the user hasn't moved on since they were requested.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/metrics"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/components"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
	"github.com/pennyflow/pennyflow/internal/tui/widgets"
)

// View is one of the fixed set of mutually exclusive screens.
type View int

const (
	ViewDashboard View = iota
	ViewTransactions
	ViewBudgets
	ViewInsights
	viewCount
)

// Title returns the view's tab label.
func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewTransactions:
		return "Transactions"
	case ViewBudgets:
		return "Budgets"
	case ViewInsights:
		return "Insights"
	default:
		return "Unknown"
	}
}

func (v View) next() View {
	return (v + 1) % viewCount
}

// Model holds the TUI state.
type Model struct {
	budgetStatus map[string]model.BudgetStatus
	registry     *widgets.Registry
	theme        themes.Theme
	config       Config
	keymap       KeyMap

	recent            []model.Transaction
	allCategories     []string
	expenseCategories []string
	budgets           []model.Budget

	txnList  components.TransactionListModel
	summary  model.Summary
	insights model.Insights
	filter   api.TransactionFilter
	form     formModel
	notice   notification
	spinner  spinner.Model

	view     View
	epoch    int
	inflight int
	width    int
	height   int

	haveSummary  bool
	haveBudgets  bool
	haveStatus   bool
	haveInsights bool
	quitting     bool
}

// New creates a model with the given configuration.
func New(cfg Config) Model {
	cfg = cfg.normalize()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		config:   cfg,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		registry: widgets.NewRegistry(),
		txnList:  components.NewTransactionList(cfg.Theme),
		spinner:  sp,
		view:     ViewDashboard,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	// Init issues the dashboard loads at epoch 0; the counter has to agree
	// with them from the first frame.
	m.inflight = len(m.viewLoads(m.view, m.epoch))
	return m
}

// Init starts the session on the dashboard.
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{tea.EnterAltScreen, m.spinner.Tick}, m.viewLoads(m.view, m.epoch)...)
	return tea.Batch(cmds...)
}

// viewLoads returns the load sequence for a view, with every command
// stamped with the given epoch.
func (m Model) viewLoads(target View, epoch int) []tea.Cmd {
	switch target {
	case ViewDashboard:
		return []tea.Cmd{
			m.loadSummary(epoch),
			m.loadTrends(epoch),
			m.loadRecent(epoch),
		}
	case ViewTransactions:
		// The vocabulary request also triggers the list load once it
		// lands, so the filter's options never lag the list.
		return []tea.Cmd{m.loadCategories(epoch, true)}
	case ViewBudgets:
		return []tea.Cmd{
			m.loadCategories(epoch, false),
			m.loadBudgets(epoch),
			m.loadBudgetStatus(epoch),
		}
	case ViewInsights:
		return []tea.Cmd{m.loadInsights(epoch)}
	default:
		return nil
	}
}

// activateView switches the active marker and runs the target view's load
// sequence. Re-activating the current view re-runs its loads, which is the
// manual refresh point. Each activation bumps the epoch so results from a
// superseded activation are discarded on arrival.
func (m Model) activateView(target View) (Model, tea.Cmd) {
	m.view = target
	m.epoch++

	cmds := m.viewLoads(target, m.epoch)
	m.inflight += len(cmds)
	return m, tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.txnList.Resize(msg.Width, msg.Height-8)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case summaryLoadedMsg:
		return m.handleSummaryLoaded(msg)

	case trendsLoadedMsg:
		return m.handleTrendsLoaded(msg)

	case recentLoadedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.recent = msg.txns
		return m, nil

	case transactionsLoadedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.txnList.SetTransactions(msg.txns)
		return m, nil

	case categoriesLoadedMsg:
		return m.handleCategoriesLoaded(msg)

	case budgetsLoadedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.budgets = msg.budgets
		m.haveBudgets = true
		return m, nil

	case budgetStatusLoadedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.budgetStatus = msg.status
		m.haveStatus = true
		return m, nil

	case insightsLoadedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.insights = msg.insights
		m.haveInsights = true
		return m, nil

	case transactionCreatedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		next, reload := m.activateView(m.view)
		return next, tea.Batch(next.show("Transaction added!", noticeSuccess), reload)

	case budgetCreatedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		next, reload := m.activateView(m.view)
		return next, tea.Batch(next.show("Budget saved!", noticeSuccess), reload)

	case transactionDeletedMsg:
		m.inflight--
		if msg.err != nil {
			return m, m.show(msg.err.Error(), noticeError)
		}
		if !msg.deleted {
			return m, m.show("Delete failed", noticeError)
		}
		next, reload := m.activateView(m.view)
		return next, tea.Batch(next.show("Transaction deleted", noticeSuccess), reload)

	case notificationExpiredMsg:
		m.expire(msg.seq)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		m.registry.ReleaseAll()
		return m, tea.Quit
	}

	if m.form.kind != formNone {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.registry.ReleaseAll()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Dashboard):
		return applyActivate(m.activateView(ViewDashboard))
	case key.Matches(msg, m.keymap.Transactions):
		return applyActivate(m.activateView(ViewTransactions))
	case key.Matches(msg, m.keymap.Budgets):
		return applyActivate(m.activateView(ViewBudgets))
	case key.Matches(msg, m.keymap.Insights):
		return applyActivate(m.activateView(ViewInsights))
	case key.Matches(msg, m.keymap.NextView):
		return applyActivate(m.activateView(m.view.next()))
	case key.Matches(msg, m.keymap.Refresh):
		return applyActivate(m.activateView(m.view))

	case key.Matches(msg, m.keymap.Dismiss):
		m.dismiss()
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.view == ViewTransactions {
			m.txnList.MoveCursor(-1)
		}
		return m, nil
	case key.Matches(msg, m.keymap.Down):
		if m.view == ViewTransactions {
			m.txnList.MoveCursor(1)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Add):
		switch m.view {
		case ViewTransactions:
			m.form = newTransactionForm(m.allCategories, m.expenseCategories, time.Now())
		case ViewBudgets:
			m.form = newBudgetForm(m.expenseCategories)
		default:
		}
		return m, nil

	case key.Matches(msg, m.keymap.Filter):
		if m.view == ViewTransactions {
			m.form = newFilterForm(m.allCategories, m.filter)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Delete):
		if m.view != ViewTransactions {
			return m, nil
		}
		selected, ok := m.txnList.Selected()
		if !ok {
			return m, nil
		}
		m.inflight++
		return m, m.deleteTransaction(selected.ID)
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.form = formModel{}
		return m, nil
	}

	form, cmd, submitted := m.form.Update(msg)
	m.form = form
	if !submitted {
		return m, cmd
	}

	switch m.form.kind {
	case formAddTransaction:
		req, err := m.form.transactionRequest()
		if err != nil {
			return m, m.show(err.Error(), noticeError)
		}
		m.form = formModel{}
		m.inflight++
		return m, m.createTransaction(req)

	case formAddBudget:
		req, err := m.form.budgetRequest()
		if err != nil {
			return m, m.show(err.Error(), noticeError)
		}
		m.form = formModel{}
		m.inflight++
		return m, m.createBudget(req)

	case formFilter:
		m.filter = m.form.filterValue()
		m.form = formModel{}
		m.epoch++
		m.inflight++
		return m, m.loadTransactions(m.epoch)

	case formNone:
	}
	return m, cmd
}

func (m Model) handleSummaryLoaded(msg summaryLoadedMsg) (tea.Model, tea.Cmd) {
	m.inflight--
	if msg.err != nil {
		return m, m.show(msg.err.Error(), noticeError)
	}
	if msg.epoch != m.epoch {
		return m, nil
	}

	m.summary = msg.summary
	m.haveSummary = true

	totals := metrics.SortedBreakdown(msg.summary.ExpenseByCategory)
	chart := widgets.NewBarBreakdown(totals, m.theme)
	if _, err := m.registry.Bind(widgets.SurfaceCategoryChart, chart); err != nil {
		return m, m.show(err.Error(), noticeError)
	}
	return m, nil
}

func (m Model) handleTrendsLoaded(msg trendsLoadedMsg) (tea.Model, tea.Cmd) {
	m.inflight--
	if msg.err != nil {
		return m, m.show(msg.err.Error(), noticeError)
	}
	if msg.epoch != m.epoch {
		return m, nil
	}

	points := metrics.FillTrendMonths(msg.points, m.config.TrendMonths, time.Now())
	chart := widgets.NewTrendLines(points, m.theme)
	if _, err := m.registry.Bind(widgets.SurfaceTrendChart, chart); err != nil {
		return m, m.show(err.Error(), noticeError)
	}
	return m, nil
}

func (m Model) handleCategoriesLoaded(msg categoriesLoadedMsg) (tea.Model, tea.Cmd) {
	m.inflight--
	if msg.err != nil {
		notify := m.show(msg.err.Error(), noticeError)
		// The list does not depend on the vocabulary; a failed vocabulary
		// fetch still hands off to the list load.
		if msg.thenReload && msg.epoch == m.epoch {
			m.inflight++
			return m, tea.Batch(notify, m.loadTransactions(msg.epoch))
		}
		return m, notify
	}
	if msg.epoch != m.epoch {
		return m, nil
	}

	m.allCategories = msg.all
	m.expenseCategories = msg.expense

	if msg.thenReload {
		m.inflight++
		return m, m.loadTransactions(msg.epoch)
	}
	return m, nil
}

func applyActivate(m Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	return m, cmd
}
