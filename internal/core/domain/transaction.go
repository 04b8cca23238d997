package domain

import "time"

// TransactionType is the sign carrier of a transaction; amounts are always positive.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the closed set of transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single ledger entry. It is never edited once recorded.
type Transaction struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   float64         `json:"amount"`
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Date     time.Time       `json:"date"`
	// Icon is copied from the category when the transaction is recorded and
	// is not re-resolved afterwards.
	Icon string `json:"icon"`
}
