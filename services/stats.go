package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gilang657/track-my-money/models"
)

// Pure aggregation over in-memory transaction slices. No I/O, no errors:
// empty inputs yield zero-valued results. Callers are expected to pass
// collections already scoped to the authenticated user.

var oneHundred = decimal.NewFromInt(100)

// FilterByRange retains transactions whose date falls within
// [from 00:00:00, to 23:59:59] inclusive. Dates carry no time
// component, so the comparison is by calendar day, which also keeps it
// stable when stored dates and query bounds sit in different
// locations. If either bound is nil the input is returned unfiltered.
// Input order is preserved.
func FilterByRange(txs []models.Transaction, r models.DateRange) []models.Transaction {
	if r.From == nil || r.To == nil {
		return txs
	}

	lo := dateKey(*r.From)
	hi := dateKey(*r.To)

	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		key := dateKey(tx.Date)
		if key < lo || key > hi {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func dateKey(t time.Time) int {
	year, month, day := t.Date()
	return year*10000 + int(month)*100 + day
}

// ComputeTotals partitions transactions by type and derives the headline
// figures. Savings rate is signed and unclamped: it goes negative when
// expenses exceed income, and is 0 whenever income is 0.
func ComputeTotals(txs []models.Transaction, initialBalance decimal.Decimal) models.DerivedStats {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			income = income.Add(tx.Amount)
		case models.TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	savingsRate := 0.0
	if income.IsPositive() {
		savingsRate, _ = income.Sub(expense).Div(income).Mul(oneHundred).Float64()
	}

	return models.DerivedStats{
		TotalIncome:  income,
		TotalExpense: expense,
		TotalBalance: initialBalance.Add(income).Sub(expense),
		SavingsRate:  savingsRate,
	}
}

// CategorySpend sums expense amounts grouped by exact category label.
// Income transactions are ignored; categories with no expenses are
// simply absent from the result.
func CategorySpend(txs []models.Transaction) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != models.TypeExpense {
			continue
		}
		spend[tx.Category] = spend[tx.Category].Add(tx.Amount)
	}
	return spend
}

// BudgetStatus evaluates each configured limit against the observed
// spend. A zero limit with nonzero spend reports as fully over budget
// (100%). The overall denominator is the face-value sum of all limits,
// zero limits included, matching the behavior the dashboard has always
// shown; see DESIGN.md before changing it.
func BudgetStatus(limits []models.BudgetLimit, spend map[string]decimal.Decimal) models.BudgetOverview {
	overview := models.BudgetOverview{
		Categories: make([]models.CategoryBudget, 0, len(limits)),
		TotalLimit: decimal.Zero,
		TotalSpent: decimal.Zero,
	}

	for _, limit := range limits {
		spent := spend[limit.Category]

		var percent float64
		switch {
		case limit.MonthlyLimit.IsPositive():
			percent, _ = spent.Div(limit.MonthlyLimit).Mul(oneHundred).Float64()
		case spent.IsPositive():
			percent = 100
		}

		overview.Categories = append(overview.Categories, models.CategoryBudget{
			Category:     limit.Category,
			MonthlyLimit: limit.MonthlyLimit,
			Spent:        spent,
			Percent:      percent,
			Status:       statusFor(percent),
		})

		overview.TotalLimit = overview.TotalLimit.Add(limit.MonthlyLimit)
		overview.TotalSpent = overview.TotalSpent.Add(spent)
	}

	if overview.TotalLimit.IsPositive() {
		overview.Percent, _ = overview.TotalSpent.Div(overview.TotalLimit).Mul(oneHundred).Float64()
	} else if overview.TotalSpent.IsPositive() {
		overview.Percent = 100
	}
	overview.Status = statusFor(overview.Percent)

	return overview
}

// statusFor maps a percentage to a status band. Warning starts at 85%
// exactly; danger requires being strictly over the limit.
func statusFor(percent float64) string {
	switch {
	case percent > 100:
		return models.BudgetStatusDanger
	case percent >= 85:
		return models.BudgetStatusWarning
	default:
		return models.BudgetStatusGood
	}
}

// GroupByDay buckets transactions by calendar day and computes each
// day's expense subtotal. Groups are sorted descending by date; within
// a group input order is preserved.
func GroupByDay(txs []models.Transaction) []models.DayGroup {
	byDay := make(map[string]*models.DayGroup)
	for _, tx := range txs {
		key := tx.Date.Format("2006-01-02")
		group, ok := byDay[key]
		if !ok {
			group = &models.DayGroup{
				Date:         startOfDay(tx.Date),
				ExpenseTotal: decimal.Zero,
			}
			byDay[key] = group
		}
		group.Transactions = append(group.Transactions, tx)
		if tx.Type == models.TypeExpense {
			group.ExpenseTotal = group.ExpenseTotal.Add(tx.Amount)
		}
	}

	groups := make([]models.DayGroup, 0, len(byDay))
	for _, group := range byDay {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

// ComputeDashboard assembles the full dashboard payload from already
// fetched inputs: range filter, totals, per-category spend, budget
// evaluation, day grouping.
func ComputeDashboard(txs []models.Transaction, limits []models.BudgetLimit, r models.DateRange, initialBalance decimal.Decimal) models.DashboardResponse {
	filtered := FilterByRange(txs, r)
	spend := CategorySpend(filtered)

	return models.DashboardResponse{
		Stats:           ComputeTotals(filtered, initialBalance),
		CategorySpend:   spend,
		Budget:          BudgetStatus(limits, spend),
		DayGroups:       GroupByDay(filtered),
		TransactionsNum: len(filtered),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
