package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gilang657/track-my-money/middleware"
	"github.com/Gilang657/track-my-money/models"
	"github.com/Gilang657/track-my-money/services"
)

type BudgetHandler struct {
	DB *sql.DB
	WS *WSHandler
}

// SetLimit creates or replaces the monthly limit for a category.
func (h *BudgetHandler) SetLimit(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.SetBudgetLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.MonthlyLimit.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Monthly limit must not be negative"})
		return
	}

	var limit models.BudgetLimit
	err := h.DB.QueryRow(`
		INSERT INTO budget_limits (user_id, category, monthly_limit)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, category)
		DO UPDATE SET monthly_limit = EXCLUDED.monthly_limit, updated_at = NOW()
		RETURNING id, category, monthly_limit, created_at, updated_at
	`, userID, req.Category, req.MonthlyLimit).Scan(
		&limit.ID, &limit.Category, &limit.MonthlyLimit, &limit.CreatedAt, &limit.UpdatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set budget limit"})
		return
	}
	limit.UserID = userID

	if h.WS != nil {
		h.WS.BroadcastToUser(userID, "budget_limit_updated")
	}

	c.JSON(http.StatusOK, limit)
}

// GetLimits lists the caller's budget limits.
func (h *BudgetHandler) GetLimits(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limits, err := fetchBudgetLimits(h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget limits"})
		return
	}

	c.JSON(http.StatusOK, limits)
}

// DeleteLimit removes a category's limit; the category becomes
// untracked, not capped at zero.
func (h *BudgetHandler) DeleteLimit(c *gin.Context) {
	userID := middleware.GetUserID(c)
	category := c.Param("category")

	result, err := h.DB.Exec(`
		DELETE FROM budget_limits WHERE user_id = $1 AND category = $2
	`, userID, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget limit"})
		return
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget limit not found"})
		return
	}

	if h.WS != nil {
		h.WS.BroadcastToUser(userID, "budget_limit_deleted")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget limit deleted successfully"})
}

// GetStatus evaluates every configured limit against spend in the
// requested range. Without from/to it covers the current calendar
// month, which is what the budget view shows.
func (h *BudgetHandler) GetStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.From == nil && filter.To == nil {
		from, to := currentMonthRange()
		filter.From, filter.To = &from, &to
	}

	limits, err := fetchBudgetLimits(h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget limits"})
		return
	}

	txs, err := fetchTransactions(h.DB, userID, models.TransactionFilter{From: filter.From, To: filter.To})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	overview := services.BudgetStatus(limits, services.CategorySpend(txs))
	c.JSON(http.StatusOK, overview)
}

func currentMonthRange() (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func fetchBudgetLimits(db *sql.DB, userID string) ([]models.BudgetLimit, error) {
	rows, err := db.Query(`
		SELECT id, category, monthly_limit, created_at, updated_at
		FROM budget_limits
		WHERE user_id = $1
		ORDER BY category
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	limits := []models.BudgetLimit{}
	for rows.Next() {
		var limit models.BudgetLimit
		if err := rows.Scan(&limit.ID, &limit.Category, &limit.MonthlyLimit, &limit.CreatedAt, &limit.UpdatedAt); err != nil {
			return nil, err
		}
		limit.UserID = userID
		limits = append(limits, limit)
	}
	return limits, rows.Err()
}
