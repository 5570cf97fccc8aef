package citizens

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"rukun/pkg/query"
	"rukun/pkg/repository"
)

var projection = query.
	NewProjectionMap("citizens", "c").
	Project("id", "ID").
	Project("nik", "NIK").
	Project("name", "Name").
	Project("pob", "POB").
	Project("dob", "DOB").
	Project("gender", "Gender").
	Project("marital_status", "MaritalStatus").
	Project("religion", "Religion").
	Project("occupation", "Occupation").
	Project("address", "Address").
	Project("is_head_of_family", "IsHeadOfFamily").
	Project("family_card_id", "FamilyCardID")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for citizen queries.
// Nil fields are ignored. Gender, Religion, MaritalStatus, FamilyCardID,
// and IsHeadOfFamily use exact matching; Address uses contains matching.
type Filters struct {
	Gender         *string    `json:"gender,omitempty"`
	Religion       *string    `json:"religion,omitempty"`
	MaritalStatus  *string    `json:"marital_status,omitempty"`
	Address        *string    `json:"address,omitempty"`
	IsHeadOfFamily *bool      `json:"is_head_of_family,omitempty"`
	FamilyCardID   *uuid.UUID `json:"family_card_id,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Gender", f.Gender).
		WhereEquals("Religion", f.Religion).
		WhereEquals("MaritalStatus", f.MaritalStatus).
		WhereContains("Address", f.Address).
		WhereEquals("IsHeadOfFamily", f.IsHeadOfFamily).
		WhereEquals("FamilyCardID", f.FamilyCardID)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if g := values.Get("gender"); g != "" {
		f.Gender = &g
	}

	if r := values.Get("religion"); r != "" {
		f.Religion = &r
	}

	if ms := values.Get("marital_status"); ms != "" {
		f.MaritalStatus = &ms
	}

	if a := values.Get("address"); a != "" {
		f.Address = &a
	}

	if h := values.Get("is_head_of_family"); h != "" {
		if v, err := strconv.ParseBool(h); err == nil {
			f.IsHeadOfFamily = &v
		}
	}

	if fc := values.Get("family_card_id"); fc != "" {
		if v, err := uuid.Parse(fc); err == nil {
			f.FamilyCardID = &v
		}
	}

	return f
}

func scanCitizen(s repository.Scanner) (Citizen, error) {
	var c Citizen
	var familyCard uuid.NullUUID

	err := s.Scan(
		&c.ID,
		&c.NIK,
		&c.Name,
		&c.POB,
		&c.DOB,
		&c.Gender,
		&c.MaritalStatus,
		&c.Religion,
		&c.Occupation,
		&c.Address,
		&c.IsHeadOfFamily,
		&familyCard,
	)
	if familyCard.Valid {
		c.FamilyCardID = &familyCard.UUID
	}
	return c, err
}
