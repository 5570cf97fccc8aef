package letters

import (
	"net/url"

	"github.com/google/uuid"

	"rukun/pkg/query"
	"rukun/pkg/repository"
)

var projection = query.
	NewProjectionMap("letters", "l").
	Project("id", "ID").
	Project("type", "Type").
	Project("citizen_id", "CitizenID").
	Project("letter_date", "Date").
	Project("purpose", "Purpose").
	Project("content", "Content").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for letter queries.
// Nil fields are ignored.
type Filters struct {
	Type      *LetterType `json:"type,omitempty"`
	CitizenID *uuid.UUID  `json:"citizen_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Type", f.Type).
		WhereEquals("CitizenID", f.CitizenID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("type"); t != "" {
		v := LetterType(t)
		f.Type = &v
	}

	if c := values.Get("citizen_id"); c != "" {
		if v, err := uuid.Parse(c); err == nil {
			f.CitizenID = &v
		}
	}

	return f
}

func scanLetter(s repository.Scanner) (Letter, error) {
	var l Letter
	err := s.Scan(
		&l.ID,
		&l.Type,
		&l.CitizenID,
		&l.Date,
		&l.Purpose,
		&l.Content,
		&l.CreatedAt,
	)
	return l, err
}
