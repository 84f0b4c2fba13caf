package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/venturelink-platform/internal/api/handler"
	"github.com/venturelink-platform/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	userHandler *handler.UserHandler,
	ledgerHandler *handler.LedgerHandler,
	bookingHandler *handler.BookingHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// User directory and per-user views
		users := v1.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.GET("/:id", userHandler.GetByID)
			users.GET("/:id/wallet", ledgerHandler.GetWallet)
			users.GET("/:id/transactions", ledgerHandler.ListTransactions)
			users.GET("/:id/meetings", bookingHandler.ListForUser)
			users.GET("/:id/meetings/pending", bookingHandler.ListPending)
			users.GET("/:id/availability", bookingHandler.ListAvailability)
		}

		// Ledger operations
		transactions := v1.Group("/transactions")
		{
			transactions.POST("/deposits", ledgerHandler.Deposit)
			transactions.POST("/withdrawals", ledgerHandler.Withdraw)
			transactions.POST("/transfers", ledgerHandler.Transfer)
			transactions.POST("/fundings", ledgerHandler.FundDeal)
		}

		// Meeting lifecycle
		meetings := v1.Group("/meetings")
		{
			meetings.POST("", bookingHandler.Propose)
			meetings.POST("/:id/response", bookingHandler.Respond)
		}

		// Availability slots
		availability := v1.Group("/availability")
		{
			availability.POST("", bookingHandler.AddAvailability)
			availability.DELETE("/:id", bookingHandler.RemoveAvailability)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
