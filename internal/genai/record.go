package genai

// CitizenRecord is the structured result of parsing free-form citizen or
// KTP text. Name and NIK are the mandatory fields; everything else is
// best-effort. Field names follow the extraction response schema.
type CitizenRecord struct {
	NIK           string `json:"nik"`
	Name          string `json:"name"`
	POB           string `json:"pob"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	Religion      string `json:"religion"`
	MaritalStatus string `json:"maritalStatus"`
	Occupation    string `json:"occupation"`
	Address       string `json:"address"`
}

// TransactionLine is a single ledger entry as serialized into the
// financial insight prompt.
type TransactionLine struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// FinancialSnapshot summarizes the ledger for insight generation. Recent
// holds the most recent transactions; at most five are sent to the model.
type FinancialSnapshot struct {
	Balance      int64             `json:"balance"`
	TotalIncome  int64             `json:"total_income"`
	TotalExpense int64             `json:"total_expense"`
	Recent       []TransactionLine `json:"recent"`
}

// AgeBand is a named age bracket with its resident count.
type AgeBand struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FinanceSummary carries the ledger totals inside demographic stats.
// JSON keys are Indonesian because they are read by the model, not the API.
type FinanceSummary struct {
	Balance int64 `json:"saldo"`
	Income  int64 `json:"pemasukan"`
	Expense int64 `json:"pengeluaran"`
}

// DemographicStats aggregates the neighborhood profile for insight
// generation.
type DemographicStats struct {
	TotalCitizens int            `json:"total_warga"`
	Male          int            `json:"pria"`
	Female        int            `json:"wanita"`
	FamilyCount   int            `json:"kepala_keluarga"`
	AgeBands      []AgeBand      `json:"usia"`
	Finance       FinanceSummary `json:"keuangan"`
}
