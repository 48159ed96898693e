package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennyflow/pennyflow/internal/api"
	"github.com/pennyflow/pennyflow/internal/model"
)

const requestTimeout = 30 * time.Second

// Load commands. Each one captures the epoch of the view activation that
// issued it so Update can discard results that arrive after the user has
// moved on.

func (m Model) loadSummary(epoch int) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		summary, err := client.Summary(ctx)
		return summaryLoadedMsg{summary: summary, err: err, epoch: epoch}
	}
}

func (m Model) loadTrends(epoch int) tea.Cmd {
	client := m.config.Client
	months := m.config.TrendMonths
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		report, err := client.Trends(ctx, months)
		return trendsLoadedMsg{points: report.Trends, err: err, epoch: epoch}
	}
}

func (m Model) loadRecent(epoch int) tea.Cmd {
	client := m.config.Client
	limit := m.config.RecentLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		txns, err := client.Transactions(ctx, api.TransactionFilter{Limit: limit})
		return recentLoadedMsg{txns: txns, err: err, epoch: epoch}
	}
}

func (m Model) loadTransactions(epoch int) tea.Cmd {
	client := m.config.Client
	filter := m.filter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		txns, err := client.Transactions(ctx, filter)
		return transactionsLoadedMsg{txns: txns, err: err, epoch: epoch}
	}
}

// loadCategories refreshes both vocabularies. When thenReload is set the
// transaction list is fetched only after the vocabulary arrives, so the
// filter's options are never behind the list they filter.
func (m Model) loadCategories(epoch int, thenReload bool) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		all, err := client.Categories(ctx, api.CategoriesAll)
		if err != nil {
			return categoriesLoadedMsg{err: err, epoch: epoch, thenReload: thenReload}
		}
		expense, err := client.Categories(ctx, api.CategoriesExpense)
		return categoriesLoadedMsg{
			all:        all,
			expense:    expense,
			err:        err,
			epoch:      epoch,
			thenReload: thenReload,
		}
	}
}

func (m Model) loadBudgets(epoch int) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		budgets, err := client.Budgets(ctx)
		return budgetsLoadedMsg{budgets: budgets, err: err, epoch: epoch}
	}
}

func (m Model) loadBudgetStatus(epoch int) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		status, err := client.BudgetStatus(ctx)
		return budgetStatusLoadedMsg{status: status, err: err, epoch: epoch}
	}
}

func (m Model) loadInsights(epoch int) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		insights, err := client.Insights(ctx)
		return insightsLoadedMsg{insights: insights, err: err, epoch: epoch}
	}
}

// Write commands. Writes are not epoch-guarded: their outcome matters no
// matter which view is active when they finish.

func (m Model) createTransaction(req model.CreateTransactionRequest) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		txn, err := client.CreateTransaction(ctx, req)
		return transactionCreatedMsg{txn: txn, err: err}
	}
}

func (m Model) createBudget(req model.CreateBudgetRequest) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		budget, err := client.CreateBudget(ctx, req)
		return budgetCreatedMsg{budget: budget, err: err}
	}
}

func (m Model) deleteTransaction(id int64) tea.Cmd {
	client := m.config.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := client.DeleteTransaction(ctx, id)
		return transactionDeletedMsg{id: id, deleted: res.Deleted, err: err}
	}
}
