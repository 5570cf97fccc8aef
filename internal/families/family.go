// Package families implements the household registry domain for Rukun.
// A family card (Kartu Keluarga) groups citizens into a household under a
// head of family.
package families

import (
	"github.com/google/uuid"
)

// FamilyCard represents a registered household card.
type FamilyCard struct {
	ID       uuid.UUID `json:"id"`
	NoKK     string    `json:"no_kk"`
	HeadName string    `json:"head_name"`
	Address  string    `json:"address"`
	RT       string    `json:"rt"`
	RW       string    `json:"rw"`
}

// CreateCommand carries the data needed to register a new family card.
type CreateCommand struct {
	NoKK     string `json:"no_kk"`
	HeadName string `json:"head_name"`
	Address  string `json:"address"`
	RT       string `json:"rt"`
	RW       string `json:"rw"`
}
