// Package letters implements the official letter domain for Rukun.
// Letter bodies are drafted through the model gateway; the surrounding
// letterhead, identity block, and signature frame are fixed layout.
package letters

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// LetterType identifies one of the official letter kinds the office issues.
type LetterType string

// Valid letter types.
const (
	TypePengantar  LetterType = "Surat Pengantar"
	TypeDomisili   LetterType = "Surat Keterangan Domisili"
	TypeTidakMampu LetterType = "Surat Keterangan Tidak Mampu"
	TypeKematian   LetterType = "Surat Kematian"
)

var letterTypes = []LetterType{
	TypePengantar,
	TypeDomisili,
	TypeTidakMampu,
	TypeKematian,
}

// LetterTypes returns the list of valid letter types.
func LetterTypes() []LetterType {
	return letterTypes
}

// UnmarshalJSON validates that the decoded string is a known letter type.
func (t *LetterType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := LetterType(raw)
	if !slices.Contains(letterTypes, v) {
		return ErrInvalidLetterType
	}
	*t = v
	return nil
}

// Letter represents an issued or pending official letter. Content is nil
// when no body has been generated yet; the letter remains printable with a
// placeholder body. Date is an ISO date string; CreatedAt is RFC 3339.
type Letter struct {
	ID        uuid.UUID  `json:"id"`
	Type      LetterType `json:"type"`
	CitizenID uuid.UUID  `json:"citizen_id"`
	Date      string     `json:"date"`
	Purpose   string     `json:"purpose"`
	Content   *string    `json:"content,omitempty"`
	CreatedAt string     `json:"created_at"`
}

// DraftCommand carries the data needed to draft a new letter. Date
// defaults to the current date when empty.
type DraftCommand struct {
	Type      LetterType `json:"type"`
	CitizenID uuid.UUID  `json:"citizen_id"`
	Date      string     `json:"date"`
	Purpose   string     `json:"purpose"`
}
