// Package metrics computes presentation quantities from raw records. Every
// function is pure and deterministic so render output can be snapshotted in
// tests.
package metrics

import (
	"sort"

	"github.com/pennyflow/pennyflow/internal/model"
)

// BudgetUsage is the derived consumption state of a single budget.
type BudgetUsage struct {
	Percent   float64
	Remaining float64
	Over      bool
}

// ComputeBudgetUsage derives consumption from spent and target amounts.
// A zero target cannot yield a meaningful percentage, so Percent is 0 and
// any spending at all counts as over budget.
func ComputeBudgetUsage(spent, target float64) BudgetUsage {
	u := BudgetUsage{
		Remaining: target - spent,
		Over:      spent > target,
	}
	if target > 0 {
		u.Percent = spent / target * 100
	}
	return u
}

// ClampPercent bounds a raw percentage to [0, 100] for visual widths only.
// Textual figures must keep the raw value.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// SavingsRate is the income-relative share kept after expenses. With no
// income there is nothing to save, so the rate is defined as 0.
func SavingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income * 100
}

// NetIncome is income minus expenses.
func NetIncome(income, expenses float64) float64 {
	return income - expenses
}

// CategoryTotal is one category's summed expense amount.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// CategoryTotals groups expense transactions by category. The result is
// ordered by amount descending, then name ascending, so renders are stable.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	sums := make(map[string]float64)
	for _, t := range txns {
		if t.Type != model.KindExpense {
			continue
		}
		sums[t.Category] += t.Amount
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for cat, amt := range sums {
		totals = append(totals, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// SortedBreakdown orders an expense-by-category mapping the same way
// CategoryTotals does, for rendering the dashboard breakdown chart.
func SortedBreakdown(byCategory map[string]float64) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(byCategory))
	for cat, amt := range byCategory {
		totals = append(totals, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// TopCategories returns the n largest totals, fewer if there aren't n.
func TopCategories(totals []CategoryTotal, n int) []CategoryTotal {
	if n <= 0 || len(totals) == 0 {
		return nil
	}
	if n > len(totals) {
		n = len(totals)
	}
	out := make([]CategoryTotal, n)
	copy(out, totals[:n])
	return out
}
