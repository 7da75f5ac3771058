package services

import (
	"context"
	"database/sql"
	"strings"
)

type CategorizerService struct {
	db *sql.DB
}

func NewCategorizerService(db *sql.DB) *CategorizerService {
	return &CategorizerService{db: db}
}

// Keyword dictionary for common merchants and recurring bills. Values
// are suggestions only; categories remain free text.
var staticRules = map[string]string{
	// GROCERIES & FOOD
	"walmart": "Food", "costco": "Food", "aldi": "Food", "lidl": "Food",
	"grocery": "Food", "supermarket": "Food", "mcdonald": "Food",
	"uber eats": "Food", "doordash": "Food", "restaurant": "Food",

	// TRANSPORT
	"uber": "Transport", "lyft": "Transport", "shell": "Transport",
	"gas station": "Transport", "fuel": "Transport", "parking": "Transport",
	"metro": "Transport", "train": "Transport", "bus": "Transport",

	// UTILITIES
	"electric": "Utilities", "water bill": "Utilities", "internet": "Utilities",
	"phone bill": "Utilities", "mobile plan": "Utilities",

	// ENTERTAINMENT
	"netflix": "Entertainment", "spotify": "Entertainment", "disney": "Entertainment",
	"cinema": "Entertainment", "steam": "Entertainment", "gym": "Entertainment",

	// HOUSING
	"rent": "Housing", "mortgage": "Housing", "landlord": "Housing",

	// HEALTH
	"pharmacy": "Health", "doctor": "Health", "dentist": "Health",
	"hospital": "Health", "insurance": "Health",

	// INCOME
	"salary": "Salary", "payroll": "Salary", "paycheck": "Salary",
}

// SuggestCategory proposes a category for a transaction description.
// The user's own history wins over the static dictionary, so a user who
// files "gym" under "Fitness" keeps getting "Fitness".
func (s *CategorizerService) SuggestCategory(ctx context.Context, userID, description string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(description))
	if normalized == "" {
		return "Other", nil
	}

	// 1. The user's most frequent category for a matching description
	var fromHistory string
	err := s.db.QueryRowContext(ctx, `
		SELECT category
		FROM transactions
		WHERE user_id = $1 AND LOWER(description) LIKE '%' || $2 || '%'
		GROUP BY category
		ORDER BY COUNT(*) DESC, category
		LIMIT 1
	`, userID, normalized).Scan(&fromHistory)

	if err == nil {
		return fromHistory, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	// 2. Static dictionary
	return staticCategory(normalized), nil
}

// staticCategory resolves a normalized description against the keyword
// dictionary, exact match first then substring.
func staticCategory(normalized string) string {
	if category, exists := staticRules[normalized]; exists {
		return category
	}
	for key, category := range staticRules {
		if strings.Contains(normalized, key) {
			return category
		}
	}
	return "Other"
}
