package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Overall budget status thresholds: spent/limit above 100% is danger,
// above 85% is warning.
const (
	BudgetStatusGood    = "good"
	BudgetStatusWarning = "warning"
	BudgetStatusDanger  = "danger"
)

// DateRange is a pair of inclusive calendar bounds used to narrow the
// transaction set before aggregation. A nil bound means unbounded on
// that side; both nil means no filtering at all.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// DerivedStats are computed on every request and never persisted.
type DerivedStats struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	SavingsRate  float64         `json:"savings_rate"`
}

// CategoryBudget pairs a configured limit with the spend observed
// against it over the evaluated period.
type CategoryBudget struct {
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
	Percent      float64         `json:"percent"`
	Status       string          `json:"status"`
}

// BudgetOverview is the roll-up across all configured limits.
type BudgetOverview struct {
	Categories []CategoryBudget `json:"categories"`
	TotalLimit decimal.Decimal  `json:"total_limit"`
	TotalSpent decimal.Decimal  `json:"total_spent"`
	Percent    float64          `json:"percent"`
	Status     string           `json:"status"`
}

// DayGroup is one calendar day's transactions with its expense subtotal,
// used by the transaction list view.
type DayGroup struct {
	Date         time.Time       `json:"date"`
	Transactions []Transaction   `json:"transactions"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
}

// DashboardResponse is the combined payload for the dashboard view.
type DashboardResponse struct {
	Stats           DerivedStats               `json:"stats"`
	CategorySpend   map[string]decimal.Decimal `json:"category_spend"`
	Budget          BudgetOverview             `json:"budget"`
	DayGroups       []DayGroup                 `json:"day_groups"`
	Currency        string                     `json:"currency"`
	TransactionsNum int                        `json:"transactions_count"`
}
