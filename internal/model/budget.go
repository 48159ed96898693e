package model

// BudgetPeriod is the recurrence window a budget covers.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the known values.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget is a spending target for one category over one period.
// Uniqueness per (category, period) is the service's invariant, not ours.
type Budget struct {
	ID       int64        `json:"id"`
	Category string       `json:"category"`
	Amount   float64      `json:"amount"`
	Period   BudgetPeriod `json:"period"`
}

// CreateBudgetRequest is the payload for POST /api/budgets.
type CreateBudgetRequest struct {
	Category string       `json:"category"`
	Amount   float64      `json:"amount"`
	Period   BudgetPeriod `json:"period"`
}

// BudgetStatus is the service's spent-versus-target report for one category.
// PercentageUsed is unclamped; clamping happens only at render time.
type BudgetStatus struct {
	BudgetAmount   float64      `json:"budget_amount"`
	Spent          float64      `json:"spent"`
	Remaining      float64      `json:"remaining"`
	PercentageUsed float64      `json:"percentage_used"`
	OverBudget     bool         `json:"over_budget"`
	Period         BudgetPeriod `json:"period"`
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
}
