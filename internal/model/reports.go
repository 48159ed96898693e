package model

// Summary is the dashboard roll-up returned by GET /api/summary.
type Summary struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpenses     float64            `json:"total_expenses"`
	NetIncome         float64            `json:"net_income"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
}

// TrendPoint is one reporting month of income/expense/net sums.
type TrendPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// TrendReport wraps the trend series returned by GET /api/trends.
type TrendReport struct {
	Trends []TrendPoint `json:"trends"`
}

// CategoryAmount is one (label, amount) ranking entry. The service encodes
// these as two-element JSON arrays, hence the custom codec in insights.go.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// Insights is the bundle returned by GET /api/insights.
type Insights struct {
	SavingsRate           float64          `json:"savings_rate"`
	TopSpendingCategories []CategoryAmount `json:"top_spending_categories"`
	BudgetAlerts          []string         `json:"budget_alerts"`
	Recommendations       []string         `json:"recommendations"`
}
