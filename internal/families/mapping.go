package families

import (
	"net/url"

	"rukun/pkg/query"
	"rukun/pkg/repository"
)

var projection = query.
	NewProjectionMap("family_cards", "f").
	Project("id", "ID").
	Project("no_kk", "NoKK").
	Project("head_name", "HeadName").
	Project("address", "Address").
	Project("rt", "RT").
	Project("rw", "RW")

var defaultSort = query.SortField{
	Field: "NoKK",
}

// Filters contains optional filtering criteria for family card queries.
// Nil fields are ignored. RT and RW use exact matching; Address uses
// contains matching.
type Filters struct {
	RT      *string `json:"rt,omitempty"`
	RW      *string `json:"rw,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("RT", f.RT).
		WhereEquals("RW", f.RW).
		WhereContains("Address", f.Address)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if rt := values.Get("rt"); rt != "" {
		f.RT = &rt
	}

	if rw := values.Get("rw"); rw != "" {
		f.RW = &rw
	}

	if a := values.Get("address"); a != "" {
		f.Address = &a
	}

	return f
}

func scanFamilyCard(s repository.Scanner) (FamilyCard, error) {
	var f FamilyCard
	err := s.Scan(
		&f.ID,
		&f.NoKK,
		&f.HeadName,
		&f.Address,
		&f.RT,
		&f.RW,
	)
	return f, err
}
