// Package dashboard aggregates the neighborhood profile: resident counts,
// demographics, household count, pending letters, and ledger totals. The
// aggregate feeds both the dashboard view and the model-backed demographic
// commentary.
package dashboard

import (
	"rukun/internal/genai"
	"rukun/internal/treasury"
)

// Age band boundaries follow the dashboard's reporting convention:
// Anak-anak < 13, Remaja 13-19, Dewasa 20-59, Lansia >= 60. Ages are
// computed from birth year only.
const (
	bandAnak   = "Anak-anak"
	bandRemaja = "Remaja"
	bandDewasa = "Dewasa"
	bandLansia = "Lansia"
)

// Stats is the aggregated neighborhood profile.
type Stats struct {
	TotalCitizens  int              `json:"total_citizens"`
	MaleCount      int              `json:"male_count"`
	FemaleCount    int              `json:"female_count"`
	FamilyCount    int              `json:"family_count"`
	PendingLetters int              `json:"pending_letters"`
	AgeBands       []genai.AgeBand  `json:"age_bands"`
	Finance        treasury.Summary `json:"finance"`
}

// demographic converts the stats into the model gateway's input shape.
func (s *Stats) demographic() genai.DemographicStats {
	return genai.DemographicStats{
		TotalCitizens: s.TotalCitizens,
		Male:          s.MaleCount,
		Female:        s.FemaleCount,
		FamilyCount:   s.FamilyCount,
		AgeBands:      s.AgeBands,
		Finance: genai.FinanceSummary{
			Balance: s.Finance.Balance,
			Income:  s.Finance.TotalIncome,
			Expense: s.Finance.TotalExpense,
		},
	}
}
