package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pennyflow/pennyflow/internal/metrics"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/tui/themes"
)

func TestBarBreakdown_Render(t *testing.T) {
	chart := NewBarBreakdown([]metrics.CategoryTotal{
		{Category: "Food", Amount: 300},
		{Category: "Rent", Amount: 100},
	}, themes.Default)

	out := chart.Render(80, 10)

	assert.Equal(t, 2, chart.Segments())
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "$300.00")
	assert.Contains(t, out, "$100.00")

	// Largest category renders first.
	assert.Less(t, strings.Index(out, "Food"), strings.Index(out, "Rent"))
}

func TestBarBreakdown_RenderEmpty(t *testing.T) {
	chart := NewBarBreakdown(nil, themes.Default)

	out := chart.Render(80, 10)

	assert.Zero(t, chart.Segments())
	assert.Contains(t, out, "No expenses yet")
}

func TestBarBreakdown_Dispose(t *testing.T) {
	chart := NewBarBreakdown([]metrics.CategoryTotal{{Category: "Food", Amount: 10}}, themes.Default)
	chart.Dispose()
	assert.Zero(t, chart.Segments())
}

func TestTrendLines_Render(t *testing.T) {
	chart := NewTrendLines([]model.TrendPoint{
		{Month: "2024-01", Income: 1000, Expenses: 400, Net: 600},
		{Month: "2024-02", Income: 500, Expenses: 900, Net: -400},
	}, themes.Default)

	out := chart.Render(100, 10)

	assert.Equal(t, 2, chart.Months())
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "2024-02")
	assert.Contains(t, out, "+$1000.00")
	assert.Contains(t, out, "-$900.00")
	assert.Contains(t, out, "$-400.00")
}

func TestTrendLines_RenderEmpty(t *testing.T) {
	chart := NewTrendLines(nil, themes.Default)
	assert.Contains(t, chart.Render(100, 10), "No trend data yet")
}

func TestTrendLines_Dispose(t *testing.T) {
	chart := NewTrendLines([]model.TrendPoint{{Month: "2024-01"}}, themes.Default)
	chart.Dispose()
	assert.Zero(t, chart.Months())
}

func TestScaleBar(t *testing.T) {
	assert.Equal(t, "·", scaleBar(0, 100, 20))
	assert.Equal(t, "·", scaleBar(50, 0, 20))
	assert.Equal(t, "▇", scaleBar(1, 1000, 20), "small values still get a visible bar")
	assert.Equal(t, strings.Repeat("▇", 20), scaleBar(1000, 1000, 20))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 12))
	assert.Equal(t, "Entertainme…", truncate("Entertainment", 12))
}
