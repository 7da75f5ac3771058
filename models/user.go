package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// USER MODEL
// ============================================================================

type User struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	Language       string          `json:"language"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	BudgetAlerts   bool            `json:"budget_alerts"`
	MonthlyReport  bool            `json:"monthly_report"`
	PasswordHash   string          `json:"-"` // Never expose in JSON
	TOTPSecret     string          `json:"-"` // Never expose in JSON
	TOTPEnabled    bool            `json:"totp_enabled"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ============================================================================
// AUTHENTICATION REQUESTS
// ============================================================================

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ============================================================================
// PROFILE REQUESTS
// ============================================================================

// UpdateProfileRequest uses pointers so omitted fields keep their stored value.
type UpdateProfileRequest struct {
	Name           *string          `json:"name,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	Language       *string          `json:"language,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
	BudgetAlerts   *bool            `json:"budget_alerts,omitempty"`
	MonthlyReport  *bool            `json:"monthly_report,omitempty"`
}

// ============================================================================
// PASSWORD & 2FA
// ============================================================================

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type TOTPSetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

type VerifyTOTPRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}
