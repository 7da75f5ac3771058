package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Gilang657/track-my-money/middleware"
	"github.com/Gilang657/track-my-money/models"
	"github.com/Gilang657/track-my-money/services"
)

type StatsHandler struct {
	DB *sql.DB
}

// Dashboard returns derived statistics for the caller over an optional
// from/to range. Transactions, budget limits and the profile are
// fetched concurrently; the aggregation itself runs over the results
// in memory. A failed fetch fails the request as a whole.
func (h *StatsHandler) Dashboard(c *gin.Context) {
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

	var (
		txs    []models.Transaction
		limits []models.BudgetLimit
		user   models.User
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		txs, err = fetchTransactions(h.DB, userID, models.TransactionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		limits, err = fetchBudgetLimits(h.DB, userID)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = fetchUser(h.DB, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}

	dashboard := services.ComputeDashboard(txs, limits, models.DateRange{From: filter.From, To: filter.To}, user.InitialBalance)
	dashboard.Currency = user.Currency

	c.JSON(http.StatusOK, dashboard)
}
