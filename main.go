package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-demobank/config"
	"go-demobank/scheduler"
	"go-demobank/session"
	"go-demobank/storage"
	"go-demobank/store"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Wire the storage adapter and the data store. The store seeds the
	// demo dataset when nothing usable is persisted.
	adapter := storage.NewAdapter(cfg.DataFile, logger)
	dataStore := store.New(adapter, logger)
	sessions := session.NewProvider()

	// Autopay sweep on the configured cron schedule.
	jobs := scheduler.NewJobs(dataStore, logger)
	cronRunner, err := scheduler.Start(cfg.AutopaySchedule, jobs, logger)
	if err != nil {
		log.Fatalf("cannot start autopay scheduler: %v", err)
	}
	defer cronRunner.Stop()

	router := setupRouter(dataStore, sessions, logger, cfg.CORSOriginList())

	logger.Info("starting demo-bank server", "port", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// setupRouter builds the gin engine with all API routes. Split out from
// main so handler tests can drive it with httptest.
func setupRouter(dataStore *store.Store, sessions *session.Provider, logger *slog.Logger, corsOrigins []string) *gin.Engine {
	router := gin.Default()
	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		}))
	}
	app := &app{store: dataStore, sessions: sessions, logger: logger}

	api := router.Group("/api")
	{
		api.POST("/session", app.signIn)
		api.DELETE("/session", app.signOut)

		api.GET("/profile", app.getProfile)
		api.PATCH("/profile", app.updateProfile)

		api.GET("/accounts", app.listAccounts)
		api.GET("/accounts/:accountId", app.getAccount)
		api.GET("/accounts/:accountId/transactions", app.listAccountTransactions)
		api.GET("/accounts/:accountId/cards", app.listAccountCards)

		api.POST("/transfers", app.createTransfer)
		api.POST("/deposits", app.depositCheck)

		api.GET("/cards", app.listCards)
		api.POST("/cards/:cardId/lock", app.lockCard)
		api.POST("/cards/:cardId/unlock", app.unlockCard)

		api.GET("/beneficiaries", app.listBeneficiaries)

		api.GET("/bills", app.listBills)
		api.POST("/bills", app.addBill)
		api.POST("/bills/:billId/pay", app.payBill)

		api.GET("/notifications", app.listNotifications)
		api.POST("/notifications/:notificationId/read", app.markNotificationRead)
		api.DELETE("/notifications/:notificationId", app.deleteNotification)

		api.GET("/spending", app.spendingInsights)
		api.GET("/faqs", app.searchFAQs)
		api.GET("/insights", app.searchInsights)
	}

	return router
}
