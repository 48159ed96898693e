package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pennyflow/pennyflow/internal/model"
)

func TestTransactionFilter_Encode(t *testing.T) {
	tests := []struct {
		name   string
		filter TransactionFilter
		want   string
	}{
		{
			name:   "empty filter fetches unfiltered",
			filter: TransactionFilter{},
			want:   "",
		},
		{
			name:   "single field",
			filter: TransactionFilter{Category: "Food"},
			want:   "?category=Food",
		},
		{
			name: "all fields in canonical order",
			filter: TransactionFilter{
				StartDate: "2024-01-01",
				EndDate:   "2024-01-31",
				Category:  "Food",
				Kind:      model.KindExpense,
				Limit:     5,
			},
			want: "?category=Food&end_date=2024-01-31&limit=5&start_date=2024-01-01&type=expense",
		},
		{
			name:   "zero limit omitted",
			filter: TransactionFilter{Limit: 0, Kind: model.KindIncome},
			want:   "?type=income",
		},
		{
			name:   "category needing escape",
			filter: TransactionFilter{Category: "Dining Out"},
			want:   "?category=Dining+Out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Encode())
		})
	}
}

func TestTransactionFilter_EncodeIsConstructionOrderIndependent(t *testing.T) {
	a := TransactionFilter{}
	a.Category = "Food"
	a.StartDate = "2024-01-01"

	b := TransactionFilter{}
	b.StartDate = "2024-01-01"
	b.Category = "Food"

	assert.Equal(t, a.Encode(), b.Encode())
	assert.Equal(t, "?category=Food&start_date=2024-01-01", a.Encode())
}

func TestTransactionFilter_IsZero(t *testing.T) {
	assert.True(t, TransactionFilter{}.IsZero())
	assert.False(t, TransactionFilter{Category: "Rent"}.IsZero())
	assert.False(t, TransactionFilter{Limit: 1}.IsZero())
}

func TestDateRange_Encode(t *testing.T) {
	assert.Equal(t, "", DateRange{}.Encode())
	assert.Equal(t, "?start_date=2024-01-01", DateRange{StartDate: "2024-01-01"}.Encode())
	assert.Equal(t,
		"?end_date=2024-06-30&start_date=2024-01-01",
		DateRange{StartDate: "2024-01-01", EndDate: "2024-06-30"}.Encode())
}
