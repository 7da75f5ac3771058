package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetLimit is a user-configured monthly spending cap for one category.
// Categories without a limit are untracked, not capped at zero.
type BudgetLimit struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type SetBudgetLimitRequest struct {
	Category     string          `json:"category" binding:"required"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}
