// Package model defines the wire types shared with the pennyflow service.
// The service owns every record; the client holds transient copies that are
// discarded on the next view refresh.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form used everywhere on the wire.
const DateLayout = "2006-01-02"

// MonthLayout is the reporting-month form used by trend points.
const MonthLayout = "2006-01"

// TransactionKind distinguishes money in from money out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Valid reports whether the kind is one of the two known values.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single financial record as returned by the service.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionKind `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// ParseDate parses a calendar date in the wire form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return d, nil
}

// ParsedDate parses the transaction's calendar date.
func (t Transaction) ParsedDate() (time.Time, error) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse transaction date %q: %w", t.Date, err)
	}
	return d, nil
}

// Signed returns the amount with expense sign applied, for display math.
func (t Transaction) Signed() float64 {
	if t.Type == KindExpense {
		return -t.Amount
	}
	return t.Amount
}

// CreateTransactionRequest is the payload for POST /api/transactions.
// Callers are expected to submit already-validated data; the client does not
// re-check amount positivity or category membership.
type CreateTransactionRequest struct {
	Type        TransactionKind `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// DeleteResult is the response of DELETE /api/transactions/{id}.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}
