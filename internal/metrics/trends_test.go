package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyflow/pennyflow/internal/model"
)

func TestFillTrendMonths(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	points := []model.TrendPoint{
		{Month: "2024-03", Income: 1000, Expenses: 400, Net: 600},
		{Month: "2024-05", Income: 1200, Expenses: 500, Net: 700},
	}

	got := FillTrendMonths(points, 6, now)

	require.Len(t, got, 6)
	wantMonths := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}
	for i, p := range got {
		assert.Equal(t, wantMonths[i], p.Month)
	}

	// Reported months keep their sums.
	assert.Equal(t, 1000.0, got[2].Income)
	assert.Equal(t, 700.0, got[4].Net)

	// Missing months are present with zero sums.
	assert.Zero(t, got[0].Income)
	assert.Zero(t, got[0].Expenses)
	assert.Zero(t, got[3].Net)
	assert.Zero(t, got[5].Income)
}

func TestFillTrendMonths_DropsPointsOutsideWindow(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	points := []model.TrendPoint{
		{Month: "2023-01", Income: 999},
		{Month: "2024-06", Income: 100},
	}

	got := FillTrendMonths(points, 3, now)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-04", got[0].Month)
	assert.Equal(t, "2024-06", got[2].Month)
	assert.Equal(t, 100.0, got[2].Income)
}

func TestFillTrendMonths_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	got := FillTrendMonths(nil, 4, now)

	require.Len(t, got, 4)
	assert.Equal(t, "2023-11", got[0].Month)
	assert.Equal(t, "2023-12", got[1].Month)
	assert.Equal(t, "2024-01", got[2].Month)
	assert.Equal(t, "2024-02", got[3].Month)
}

func TestFillTrendMonths_NonPositiveCount(t *testing.T) {
	assert.Nil(t, FillTrendMonths(nil, 0, time.Now()))
	assert.Nil(t, FillTrendMonths(nil, -1, time.Now()))
}

func TestTrendExtent(t *testing.T) {
	points := []model.TrendPoint{
		{Income: 1000, Expenses: 400},
		{Income: 800, Expenses: 1600},
	}

	assert.Equal(t, 1600.0, TrendExtent(points))
	assert.Equal(t, 0.0, TrendExtent(nil))
}
