package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SohamBhandary/MoneyFrontend/internal/config"
	"github.com/SohamBhandary/MoneyFrontend/internal/handlers"
	"github.com/SohamBhandary/MoneyFrontend/internal/logger"
	"github.com/SohamBhandary/MoneyFrontend/internal/middleware"
	"github.com/SohamBhandary/MoneyFrontend/internal/remote"
	"github.com/SohamBhandary/MoneyFrontend/internal/services"
	"github.com/SohamBhandary/MoneyFrontend/internal/validator"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Upstream API client shared by both ledgers.
	upstream := remote.NewClient(
		appConfig.UpstreamURL,
		appConfig.UpstreamToken,
		&http.Client{Timeout: appConfig.RequestTimeout},
	)

	// Ledger core: one independent service per ledger type.
	ledgers := services.NewLedgers(upstream)
	exports := services.NewExportService(upstream)

	ledgerHandler := handlers.NewLedgerHandler(ledgers)
	exportHandler := handlers.NewExportHandler(ledgers, exports)

	validator.Register()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	ledger := v1.Group("/:type")
	ledger.GET("/transactions", ledgerHandler.ListTransactions)
	ledger.POST("/transactions", ledgerHandler.CreateTransaction)
	ledger.DELETE("/transactions/:id", ledgerHandler.DeleteTransaction)
	ledger.GET("/categories", ledgerHandler.ListCategories)
	ledger.GET("/chart", ledgerHandler.Chart)
	ledger.GET("/export/download", exportHandler.Download)
	ledger.GET("/export/snapshot", exportHandler.Snapshot)

	log.Infof("Starting MoneyFrontend server on port %s", appConfig.Port)
	log.Infof("Upstream money manager API at %s", appConfig.UpstreamURL)
	return router.Run(":" + appConfig.Port)
}
