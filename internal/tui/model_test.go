package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/widgets"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return New(Config{Client: api.NewClient("http://localhost:1", time.Second)})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got, cmd
}

func TestNew_StartsOnDashboardWithLoadsInFlight(t *testing.T) {
	m := testModel(t)

	assert.Equal(t, ViewDashboard, m.view)
	assert.Equal(t, 0, m.epoch)
	assert.Equal(t, 3, m.inflight)
	assert.NotNil(t, m.Init())
}

func TestActivateView_BumpsEpochAndIssuesLoads(t *testing.T) {
	m := testModel(t)

	next, cmd := m.activateView(ViewTransactions)

	assert.Equal(t, ViewTransactions, next.view)
	assert.Equal(t, m.epoch+1, next.epoch)
	assert.Equal(t, m.inflight+1, next.inflight)
	assert.NotNil(t, cmd)
}

func TestActivateView_SameViewIsRefresh(t *testing.T) {
	m := testModel(t)

	next, cmd := m.activateView(m.view)

	assert.Equal(t, m.view, next.view)
	assert.Equal(t, m.epoch+1, next.epoch, "refresh supersedes outstanding loads")
	assert.NotNil(t, cmd)
}

func TestUpdate_SummaryAppliesAndBindsChart(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, summaryLoadedMsg{
		epoch: m.epoch,
		summary: model.Summary{
			TotalIncome:       1000,
			TotalExpenses:     400,
			NetIncome:         600,
			ExpenseByCategory: map[string]float64{"Food": 400},
		},
	})

	assert.True(t, m.haveSummary)
	_, ok := m.registry.Get(widgets.SurfaceCategoryChart)
	assert.True(t, ok)
}

func TestUpdate_StaleSummaryDropped(t *testing.T) {
	m := testModel(t)
	stale := m.epoch
	m, _ = m.activateView(ViewTransactions)
	before := m.inflight

	m, _ = update(t, m, summaryLoadedMsg{
		epoch:   stale,
		summary: model.Summary{TotalIncome: 1000},
	})

	assert.False(t, m.haveSummary, "result from a superseded activation must not apply")
	assert.Equal(t, before-1, m.inflight, "a dropped result still settles the busy counter")
}

func TestUpdate_RebindDisposesPreviousChart(t *testing.T) {
	m := testModel(t)
	summary := model.Summary{ExpenseByCategory: map[string]float64{"Food": 10}}

	m, _ = update(t, m, summaryLoadedMsg{epoch: m.epoch, summary: summary})
	h1, ok := m.registry.Get(widgets.SurfaceCategoryChart)
	require.True(t, ok)

	m, _ = update(t, m, summaryLoadedMsg{epoch: m.epoch, summary: summary})
	h2, ok := m.registry.Get(widgets.SurfaceCategoryChart)
	require.True(t, ok)

	assert.True(t, h1.Disposed())
	assert.False(t, h2.Disposed())
	assert.NotEqual(t, h1.ID(), h2.ID())
	assert.Equal(t, 1, m.registry.LiveCount())
}

func TestUpdate_LoadErrorBecomesNotification(t *testing.T) {
	m := testModel(t)
	before := m.inflight

	m, cmd := update(t, m, summaryLoadedMsg{epoch: m.epoch, err: errors.New("500 Internal Server Error")})

	assert.False(t, m.haveSummary)
	assert.True(t, m.notice.Visible())
	assert.Equal(t, "500 Internal Server Error", m.notice.text)
	assert.Equal(t, noticeError, m.notice.level)
	assert.Equal(t, before-1, m.inflight)
	assert.NotNil(t, cmd, "the expiry timer must be armed")
}

func TestUpdate_CategoriesThenReloadChainsListLoad(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	before := m.inflight

	m, cmd := update(t, m, categoriesLoadedMsg{
		epoch:      m.epoch,
		all:        []string{"Food", "Salary"},
		expense:    []string{"Food"},
		thenReload: true,
	})

	assert.Equal(t, []string{"Food", "Salary"}, m.allCategories)
	assert.Equal(t, []string{"Food"}, m.expenseCategories)
	assert.Equal(t, before, m.inflight, "the vocabulary load hands off to the list load")
	assert.NotNil(t, cmd)
}

func TestUpdate_VocabularyFailureStillLoadsList(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	before := m.inflight

	m, cmd := update(t, m, categoriesLoadedMsg{
		epoch:      m.epoch,
		err:        errors.New("502 Bad Gateway"),
		thenReload: true,
	})

	assert.Equal(t, before, m.inflight, "the failed vocabulary fetch still hands off to the list load")
	assert.NotNil(t, cmd)
	assert.Equal(t, "502 Bad Gateway", m.notice.text)
	assert.Equal(t, noticeError, m.notice.level)
}

func TestUpdate_StaleVocabularyFailureDoesNotChain(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	stale := m.epoch
	m, _ = m.activateView(ViewTransactions)
	before := m.inflight

	m, _ = update(t, m, categoriesLoadedMsg{
		epoch:      stale,
		err:        errors.New("502 Bad Gateway"),
		thenReload: true,
	})

	assert.Equal(t, before-1, m.inflight, "a superseded activation must not issue new loads")
}

func TestUpdate_CategoriesWithoutReload(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewBudgets)
	before := m.inflight

	m, cmd := update(t, m, categoriesLoadedMsg{
		epoch:   m.epoch,
		all:     []string{"Food"},
		expense: []string{"Food"},
	})

	assert.Equal(t, before-1, m.inflight)
	assert.Nil(t, cmd)
}

func TestUpdate_DeleteFailureLeavesListUntouched(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	m, _ = update(t, m, transactionsLoadedMsg{
		epoch: m.epoch,
		txns: []model.Transaction{
			{ID: 1, Type: model.KindExpense, Amount: 5, Description: "Coffee", Category: "Food", Date: "2025-01-02"},
		},
	})

	m, _ = update(t, m, transactionDeletedMsg{id: 1, deleted: false})

	assert.Equal(t, 1, m.txnList.Len())
	assert.Equal(t, "Delete failed", m.notice.text)
	assert.Equal(t, noticeError, m.notice.level)
}

func TestUpdate_DeleteTransportErrorCarriesStatusText(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)

	m, _ = update(t, m, transactionDeletedMsg{id: 1, err: errors.New("500 Internal Server Error")})

	assert.Equal(t, "500 Internal Server Error", m.notice.text)
	assert.Equal(t, noticeError, m.notice.level)
}

func TestUpdate_DeleteSuccessNotifiesAndReloads(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	epoch := m.epoch

	m, cmd := update(t, m, transactionDeletedMsg{id: 1, deleted: true})

	assert.Equal(t, "Transaction deleted", m.notice.text)
	assert.Equal(t, noticeSuccess, m.notice.level)
	assert.Greater(t, m.epoch, epoch, "the reload supersedes outstanding loads")
	assert.NotNil(t, cmd)
}

func TestUpdate_CreateResultsRefreshCurrentView(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewBudgets)
	epoch := m.epoch

	m, cmd := update(t, m, budgetCreatedMsg{budget: model.Budget{Category: "Food"}})

	assert.Equal(t, ViewBudgets, m.view)
	assert.Greater(t, m.epoch, epoch)
	assert.Equal(t, "Budget saved!", m.notice.text)
	assert.NotNil(t, cmd)
}

func TestUpdate_NumberKeysSwitchViews(t *testing.T) {
	tests := []struct {
		key  rune
		want View
	}{
		{'1', ViewDashboard},
		{'2', ViewTransactions},
		{'3', ViewBudgets},
		{'4', ViewInsights},
	}

	for _, tt := range tests {
		m := testModel(t)
		m, cmd := update(t, m, keyRune(tt.key))

		assert.Equal(t, tt.want, m.view)
		assert.NotNil(t, cmd, "switching views issues that view's loads")
	}
}

func TestUpdate_TabCyclesViews(t *testing.T) {
	m := testModel(t)

	order := []View{ViewTransactions, ViewBudgets, ViewInsights, ViewDashboard}
	for _, want := range order {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, m.view)
	}
}

func TestUpdate_RefreshKeyKeepsViewBumpsEpoch(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewInsights)
	epoch := m.epoch

	m, cmd := update(t, m, keyRune('r'))

	assert.Equal(t, ViewInsights, m.view)
	assert.Equal(t, epoch+1, m.epoch)
	assert.NotNil(t, cmd)
}

func TestUpdate_DeleteKeyRequiresSelection(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	before := m.inflight

	m, cmd := update(t, m, keyRune('d'))
	assert.Nil(t, cmd, "nothing selected, nothing to delete")
	assert.Equal(t, before, m.inflight)

	m, _ = update(t, m, transactionsLoadedMsg{
		epoch: m.epoch,
		txns:  []model.Transaction{{ID: 7, Type: model.KindExpense, Amount: 3, Date: "2025-01-02"}},
	})
	before = m.inflight

	m, cmd = update(t, m, keyRune('d'))
	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.inflight)
}

func TestUpdate_AddKeyOpensFormForView(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, keyRune('a'))
	assert.Equal(t, formNone, m.form.kind, "dashboard has no add form")

	m, _ = m.activateView(ViewTransactions)
	m, _ = update(t, m, keyRune('a'))
	assert.Equal(t, formAddTransaction, m.form.kind)

	m.form = formModel{}
	m, _ = m.activateView(ViewBudgets)
	m, _ = update(t, m, keyRune('a'))
	assert.Equal(t, formAddBudget, m.form.kind)
}

func TestUpdate_EscClosesForm(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	m, _ = update(t, m, keyRune('a'))
	require.Equal(t, formAddTransaction, m.form.kind)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, formNone, m.form.kind)
}

func TestUpdate_QuitReleasesAllWidgets(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, summaryLoadedMsg{
		epoch:   m.epoch,
		summary: model.Summary{ExpenseByCategory: map[string]float64{"Food": 10}},
	})
	require.Equal(t, 1, m.registry.LiveCount())

	m, cmd := update(t, m, keyRune('q'))

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.registry.LiveCount())
}

func TestUpdate_ForceQuitBinding(t *testing.T) {
	m := testModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.registry.LiveCount())
}

func TestView_RendersTabsAndNotification(t *testing.T) {
	m := testModel(t)
	_ = m.show("Transaction added!", noticeSuccess)

	out := m.View()

	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "Transactions")
	assert.Contains(t, out, "Transaction added!")
}

func TestView_TransactionsShowsActiveFilter(t *testing.T) {
	m := testModel(t)
	m, _ = m.activateView(ViewTransactions)
	m.filter = api.TransactionFilter{Category: "Food", Kind: model.KindExpense}

	out := m.View()

	assert.Contains(t, out, "category Food")
	assert.Contains(t, out, "expense")
}
