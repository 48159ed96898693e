package metrics

import (
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// FillTrendMonths expands a trend series to exactly months points ending at
// the month containing now, oldest first. Months the service reported keep
// their sums; months with no records appear with zero sums. Points outside
// the window are dropped.
func FillTrendMonths(points []model.TrendPoint, months int, now time.Time) []model.TrendPoint {
	if months <= 0 {
		return nil
	}

	byMonth := make(map[string]model.TrendPoint, len(points))
	for _, p := range points {
		byMonth[p.Month] = p
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		key := current.AddDate(0, -i, 0).Format(model.MonthLayout)
		if p, ok := byMonth[key]; ok {
			out = append(out, p)
			continue
		}
		out = append(out, model.TrendPoint{Month: key})
	}
	return out
}

// TrendExtent returns the largest absolute income or expense value in the
// series, used to scale chart bars. Zero for an empty series.
func TrendExtent(points []model.TrendPoint) float64 {
	var max float64
	for _, p := range points {
		if p.Income > max {
			max = p.Income
		}
		if p.Expenses > max {
			max = p.Expenses
		}
	}
	return max
}
