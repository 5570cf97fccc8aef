package treasury

import (
	"net/url"

	"rukun/pkg/query"
	"rukun/pkg/repository"
)

var projection = query.
	NewProjectionMap("transactions", "t").
	Project("id", "ID").
	Project("tx_date", "Date").
	Project("description", "Description").
	Project("amount", "Amount").
	Project("type", "Type").
	Project("category", "Category")

var defaultSort = query.SortField{
	Field:      "Date",
	Descending: true,
}

// Filters contains optional filtering criteria for transaction queries.
// Nil fields are ignored. Type and Category use exact matching; DateFrom
// and DateTo bound the date range inclusively.
type Filters struct {
	Type     *TransactionType `json:"type,omitempty"`
	Category *string          `json:"category,omitempty"`
	DateFrom *string          `json:"date_from,omitempty"`
	DateTo   *string          `json:"date_to,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereEquals("Type", f.Type).
		WhereEquals("Category", f.Category)

	if f.DateFrom != nil && *f.DateFrom != "" {
		b.WhereCompare("Date", ">=", *f.DateFrom)
	}
	if f.DateTo != nil && *f.DateTo != "" {
		b.WhereCompare("Date", "<=", *f.DateTo)
	}
	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("type"); t != "" {
		v := TransactionType(t)
		f.Type = &v
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if from := values.Get("date_from"); from != "" {
		f.DateFrom = &from
	}

	if to := values.Get("date_to"); to != "" {
		f.DateTo = &to
	}

	return f
}

func scanTransaction(s repository.Scanner) (Transaction, error) {
	var t Transaction
	err := s.Scan(
		&t.ID,
		&t.Date,
		&t.Description,
		&t.Amount,
		&t.Type,
		&t.Category,
	)
	return t, err
}
