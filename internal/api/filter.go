package api

import (
	"net/url"
	"strconv"

	"github.com/pennyflow/pennyflow/internal/model"
)

// TransactionFilter holds the optional filter fields for the transaction
// list. Zero-valued fields are omitted from the query entirely; the service
// treats an absent parameter as "no filter".
type TransactionFilter struct {
	StartDate string
	EndDate   string
	Category  string
	Kind      model.TransactionKind
	Limit     int
}

// Values builds the filter's query parameters. url.Values encodes keys in
// sorted order, so equivalent filters always produce identical strings
// regardless of how they were assembled.
func (f TransactionFilter) Values() url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Kind != "" {
		q.Set("type", string(f.Kind))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// Encode returns the canonical query string, including the leading "?", or
// an empty string when no filter is set.
func (f TransactionFilter) Encode() string {
	q := f.Values()
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// IsZero reports whether no filter field is set.
func (f TransactionFilter) IsZero() bool {
	return f == TransactionFilter{}
}

// DateRange is the optional window for the export download.
type DateRange struct {
	StartDate string
	EndDate   string
}

// Encode returns the range's canonical query string, or "" when unbounded.
func (r DateRange) Encode() string {
	q := url.Values{}
	if r.StartDate != "" {
		q.Set("start_date", r.StartDate)
	}
	if r.EndDate != "" {
		q.Set("end_date", r.EndDate)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
