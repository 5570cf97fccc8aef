// Package citizens implements the resident registry domain for Rukun.
// It provides types, data access, and business logic for citizen records,
// including registration of records extracted from free-form text.
package citizens

import (
	"github.com/google/uuid"
)

// Citizen represents a registered resident with their identity data.
// DOB is an ISO date string (YYYY-MM-DD); FamilyCardID is nil for
// residents not yet assigned to a family card.
type Citizen struct {
	ID             uuid.UUID  `json:"id"`
	NIK            string     `json:"nik"`
	Name           string     `json:"name"`
	POB            string     `json:"pob"`
	DOB            string     `json:"dob"`
	Gender         string     `json:"gender"`
	Religion       string     `json:"religion"`
	MaritalStatus  string     `json:"marital_status"`
	Occupation     string     `json:"occupation"`
	Address        string     `json:"address"`
	IsHeadOfFamily bool       `json:"is_head_of_family"`
	FamilyCardID   *uuid.UUID `json:"family_card_id,omitempty"`
}

// Gender values accepted by the registry.
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

// CreateCommand carries the data needed to register a new citizen.
type CreateCommand struct {
	NIK            string     `json:"nik"`
	Name           string     `json:"name"`
	POB            string     `json:"pob"`
	DOB            string     `json:"dob"`
	Gender         string     `json:"gender"`
	Religion       string     `json:"religion"`
	MaritalStatus  string     `json:"marital_status"`
	Occupation     string     `json:"occupation"`
	Address        string     `json:"address"`
	IsHeadOfFamily bool       `json:"is_head_of_family"`
	FamilyCardID   *uuid.UUID `json:"family_card_id,omitempty"`
}

// UpdateCommand carries replacement data for an existing citizen.
type UpdateCommand struct {
	CreateCommand
}

// ExtractCommand carries the free-form text to parse into a citizen record.
type ExtractCommand struct {
	Text string `json:"text"`
}
