package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/Gilang657/track-my-money/handlers"
	"github.com/Gilang657/track-my-money/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupTransactionRoutes sets up protected transaction routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	txHandler := &handlers.TransactionHandler{
		DB:          db,
		WS:          ws,
		Categorizer: services.NewCategorizerService(db),
	}

	rg.GET("/transactions", txHandler.GetTransactions)
	rg.POST("/transactions", txHandler.CreateTransaction)
	rg.GET("/transactions/by-day", txHandler.GetTransactionsByDay)
	rg.GET("/transactions/suggest-category", txHandler.SuggestCategory)
	rg.GET("/transactions/:id", txHandler.GetTransaction)
	rg.DELETE("/transactions/:id", txHandler.DeleteTransaction)
}

// SetupBudgetRoutes sets up protected budget limit routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	budgetHandler := &handlers.BudgetHandler{DB: db, WS: ws}

	rg.GET("/budgets", budgetHandler.GetLimits)
	rg.PUT("/budgets", budgetHandler.SetLimit)
	rg.GET("/budgets/status", budgetHandler.GetStatus)
	rg.DELETE("/budgets/:category", budgetHandler.DeleteLimit)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.GET("/user/export", userHandler.ExportUserData)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}

// SetupStatsRoutes sets up protected statistics routes.
func SetupStatsRoutes(rg *gin.RouterGroup, db *sql.DB) {
	statsHandler := &handlers.StatsHandler{DB: db}

	rg.GET("/stats/dashboard", statsHandler.Dashboard)
}
