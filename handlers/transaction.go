package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gilang657/track-my-money/middleware"
	"github.com/Gilang657/track-my-money/models"
	"github.com/Gilang657/track-my-money/services"
)

type TransactionHandler struct {
	DB          *sql.DB
	WS          *WSHandler
	Categorizer *services.CategorizerService
}

// CreateTransaction records a new income or expense. Transactions are
// immutable; there is no update endpoint.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must not be negative"})
		return
	}

	if _, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	// The date string goes straight to the DATE column so no timezone
	// conversion can shift the calendar day.
	var tx models.Transaction
	err := h.DB.QueryRow(`
		INSERT INTO transactions (user_id, amount, type, category, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, amount, type, category, description, date, created_at
	`, userID, req.Amount, req.Type, req.Category, req.Description, req.Date).Scan(
		&tx.ID, &tx.Amount, &tx.Type, &tx.Category, &tx.Description, &tx.Date, &tx.CreatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}
	tx.UserID = userID

	if h.WS != nil {
		h.WS.BroadcastToUser(userID, "transaction_created")
	}

	c.JSON(http.StatusCreated, tx)
}

// GetTransactions lists the caller's transactions, newest date first.
// Optional query params: from, to (YYYY-MM-DD), type, category.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
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

	txs, err := fetchTransactions(h.DB, userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}

// GetTransactionsByDay returns the caller's transactions grouped per
// calendar day with expense subtotals, newest day first.
func (h *TransactionHandler) GetTransactionsByDay(c *gin.Context) {
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

	txs, err := fetchTransactions(h.DB, userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, services.GroupByDay(txs))
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	txID := c.Param("id")
	if _, err := uuid.Parse(txID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var tx models.Transaction
	err := h.DB.QueryRow(`
		SELECT id, amount, type, category, description, date, created_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`, txID, userID).Scan(
		&tx.ID, &tx.Amount, &tx.Type, &tx.Category, &tx.Description, &tx.Date, &tx.CreatedAt,
	)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
		return
	}
	tx.UserID = userID

	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID := middleware.GetUserID(c)
	txID := c.Param("id")
	if _, err := uuid.Parse(txID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	result, err := h.DB.Exec(`
		DELETE FROM transactions WHERE id = $1 AND user_id = $2
	`, txID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	if h.WS != nil {
		h.WS.BroadcastToUser(userID, "transaction_deleted")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// SuggestCategory proposes a category for a description, preferring the
// caller's own filing history.
func (h *TransactionHandler) SuggestCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	description := c.Query("description")
	category, err := h.Categorizer.SuggestCategory(c.Request.Context(), userID, description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suggest category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

func parseTransactionFilter(c *gin.Context) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	if value := c.Query("from"); value != "" {
		t, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid from date, expected YYYY-MM-DD")
		}
		filter.From = &t
	}
	if value := c.Query("to"); value != "" {
		t, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid to date, expected YYYY-MM-DD")
		}
		filter.To = &t
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return filter, fmt.Errorf("from must not be after to")
	}

	filter.Type = c.Query("type")
	filter.Category = c.Query("category")
	return filter, nil
}

func fetchTransactions(db *sql.DB, userID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, amount, type, category, description, date, created_at
		FROM transactions
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	add := func(clause string, value interface{}) {
		args = append(args, value)
		query += " AND " + clause + " $" + strconv.Itoa(len(args))
	}

	// Dates go over the wire as YYYY-MM-DD so the DATE column compares
	// by calendar day regardless of server timezone.
	if filter.From != nil {
		add("date >=", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		add("date <=", filter.To.Format("2006-01-02"))
	}
	if filter.Type != "" {
		add("type =", filter.Type)
	}
	if filter.Category != "" {
		add("category =", filter.Category)
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.Amount, &tx.Type, &tx.Category, &tx.Description, &tx.Date, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.UserID = userID
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
