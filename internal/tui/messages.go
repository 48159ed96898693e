package tui

import (
	"github.com/pennyflow/pennyflow/internal/model"
)

// Load-result messages. Every message carries the epoch of the view
// activation that requested it; stale results are dropped in Update.

type summaryLoadedMsg struct {
	err     error
	summary model.Summary
	epoch   int
}

type trendsLoadedMsg struct {
	err    error
	points []model.TrendPoint
	epoch  int
}

type recentLoadedMsg struct {
	err   error
	txns  []model.Transaction
	epoch int
}

type transactionsLoadedMsg struct {
	err   error
	txns  []model.Transaction
	epoch int
}

type categoriesLoadedMsg struct {
	err        error
	all        []string
	expense    []string
	epoch      int
	thenReload bool // reload the transaction list once the vocabulary is in
}

type budgetsLoadedMsg struct {
	err     error
	budgets []model.Budget
	epoch   int
}

type budgetStatusLoadedMsg struct {
	err    error
	status map[string]model.BudgetStatus
	epoch  int
}

type insightsLoadedMsg struct {
	err      error
	insights model.Insights
	epoch    int
}

// Write-result messages.

type transactionCreatedMsg struct {
	err error
	txn model.Transaction
}

type budgetCreatedMsg struct {
	err    error
	budget model.Budget
}

type transactionDeletedMsg struct {
	err     error
	id      int64
	deleted bool
}

// Notification lifecycle.

type notificationExpiredMsg struct {
	seq int
}
