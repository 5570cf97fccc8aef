// Package treasury implements the petty-cash ledger domain for Rukun.
// It provides transaction recording, ledger summarization, and the
// model-backed financial commentary.
package treasury

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// TransactionType classifies a ledger entry as income or expense.
type TransactionType string

// Valid transaction types.
const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

var transactionTypes = []TransactionType{
	TypeIncome,
	TypeExpense,
}

// UnmarshalJSON validates that the decoded string is a known transaction type.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := TransactionType(raw)
	if !slices.Contains(transactionTypes, v) {
		return ErrInvalidType
	}
	*t = v
	return nil
}

// Transaction represents a single ledger entry. Date is an ISO date string
// (YYYY-MM-DD); Amount is in whole rupiah.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
}

// CreateCommand carries the data needed to record a new transaction.
type CreateCommand struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
}

// Summary holds the ledger totals.
type Summary struct {
	Balance      int64 `json:"balance"`
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
}
