package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gilang657/track-my-money/utils"
)

// Conversion rates relative to USD. Static on purpose: amounts are
// converted once when the profile currency changes, not marked to
// market on every read.
var usdRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"JPY": decimal.RequireFromString("149.50"),
	"CHF": decimal.RequireFromString("0.88"),
	"IDR": decimal.RequireFromString("15600"),
	"AUD": decimal.RequireFromString("1.52"),
	"CAD": decimal.RequireFromString("1.36"),
}

// SupportedCurrency reports whether a currency code can be stored on a
// profile.
func SupportedCurrency(code string) bool {
	_, ok := usdRates[code]
	return ok
}

// SupportedCurrencies returns the currency codes accepted by
// SupportedCurrency, in no particular order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(usdRates))
	for code := range usdRates {
		codes = append(codes, code)
	}
	return codes
}

// ConvertAmount converts an amount between two supported currencies,
// rounded to 2 decimal places.
func ConvertAmount(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	factor, err := ConversionFactor(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(factor).Round(2), nil
}

// ConversionFactor returns the multiplier applied to amounts when a
// profile moves from one currency to another. Unrounded: rounding a
// factor like IDR to USD (~0.000064) would zero out every amount.
func ConversionFactor(from, to string) (decimal.Decimal, error) {
	fromRate, ok := usdRates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("unsupported currency %q", from)
	}
	toRate, ok := usdRates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("unsupported currency %q", to)
	}
	return toRate.Div(fromRate), nil
}

// ChangeCurrency rewrites every stored amount for the user into the new
// currency and records the new currency code, all in one transaction.
// A no-op when the user already uses the requested currency.
func ChangeCurrency(ctx context.Context, db *sql.DB, userID, newCurrency string) error {
	var current string
	err := db.QueryRowContext(ctx, `SELECT currency FROM users WHERE id = $1`, userID).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read current currency: %w", err)
	}
	if current == newCurrency {
		return nil
	}

	factor, err := ConversionFactor(current, newCurrency)
	if err != nil {
		return err
	}

	return utils.WithTransaction(db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE transactions
			SET amount = ROUND(amount * $1::numeric, 2)
			WHERE user_id = $2
		`, factor.String(), userID); err != nil {
			return fmt.Errorf("failed to convert transactions: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE budget_limits
			SET monthly_limit = ROUND(monthly_limit * $1::numeric, 2), updated_at = NOW()
			WHERE user_id = $2
		`, factor.String(), userID); err != nil {
			return fmt.Errorf("failed to convert budget limits: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE users
			SET currency = $1, initial_balance = ROUND(initial_balance * $2::numeric, 2), updated_at = NOW()
			WHERE id = $3
		`, newCurrency, factor.String(), userID); err != nil {
			return fmt.Errorf("failed to update profile currency: %w", err)
		}

		return nil
	})
}
