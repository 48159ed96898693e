package api

import (
	"context"
	"fmt"
	"io"

	"github.com/pennyflow/pennyflow/internal/model"
)

// CategoryScope selects which vocabulary the service returns.
type CategoryScope string

const (
	// CategoriesAll is the full vocabulary, used by filter contexts.
	CategoriesAll CategoryScope = "all"
	// CategoriesExpense is the expense-only vocabulary, used by budget contexts.
	CategoriesExpense CategoryScope = "expense"
)

// Categories fetches the category vocabulary for the given scope.
func (c *Client) Categories(ctx context.Context, scope CategoryScope) ([]string, error) {
	var out []string
	if err := c.Get(ctx, fmt.Sprintf("/api/categories?type=%s", scope), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary fetches the dashboard roll-up.
func (c *Client) Summary(ctx context.Context) (model.Summary, error) {
	var out model.Summary
	if err := c.Get(ctx, "/api/summary", &out); err != nil {
		return model.Summary{}, err
	}
	return out, nil
}

// Transactions fetches the transaction list matching the filter.
func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.Get(ctx, "/api/transactions"+filter.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction submits a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (model.Transaction, error) {
	var out model.Transaction
	if err := c.Post(ctx, "/api/transactions", req, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// DeleteTransaction deletes a transaction by id. A response of
// {deleted: false} is not an error; the caller decides how to present it.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) (model.DeleteResult, error) {
	var out model.DeleteResult
	if err := c.Delete(ctx, fmt.Sprintf("/api/transactions/%d", id), &out); err != nil {
		return model.DeleteResult{}, err
	}
	return out, nil
}

// Trends fetches the month-by-month trend series.
func (c *Client) Trends(ctx context.Context, months int) (model.TrendReport, error) {
	var out model.TrendReport
	if err := c.Get(ctx, fmt.Sprintf("/api/trends?months=%d", months), &out); err != nil {
		return model.TrendReport{}, err
	}
	return out, nil
}

// Budgets fetches all budgets.
func (c *Client) Budgets(ctx context.Context) ([]model.Budget, error) {
	var out []model.Budget
	if err := c.Get(ctx, "/api/budgets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBudget submits a new budget.
func (c *Client) CreateBudget(ctx context.Context, req model.CreateBudgetRequest) (model.Budget, error) {
	var out model.Budget
	if err := c.Post(ctx, "/api/budgets", req, &out); err != nil {
		return model.Budget{}, err
	}
	return out, nil
}

// BudgetStatus fetches the per-category spent-versus-target map.
func (c *Client) BudgetStatus(ctx context.Context) (map[string]model.BudgetStatus, error) {
	var out map[string]model.BudgetStatus
	if err := c.Get(ctx, "/api/budgets/status", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insights fetches the derived insight bundle.
func (c *Client) Insights(ctx context.Context) (model.Insights, error) {
	var out model.Insights
	if err := c.Get(ctx, "/api/insights", &out); err != nil {
		return model.Insights{}, err
	}
	return out, nil
}

// Export streams the CSV export for the given range into w.
func (c *Client) Export(ctx context.Context, r DateRange, w io.Writer, onStart func(contentLength int64)) error {
	return c.Download(ctx, "/api/export"+r.Encode(), w, onStart)
}
