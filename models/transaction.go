package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Matching is by exact string, enforced at the API
// boundary and by a CHECK constraint in the schema.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense record. Transactions are
// immutable once created; the only mutation is deletion.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateTransactionRequest struct {
	// No required tag: the validator treats a zero decimal as missing,
	// and a zero amount is a valid transaction.
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
}

// TransactionFilter narrows a transaction listing. Zero values mean
// no filtering on that dimension.
type TransactionFilter struct {
	From     *time.Time
	To       *time.Time
	Type     string
	Category string
}
