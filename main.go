package main

import (
	"os"
	"time"

	"BudgetPilot/config/database"
	"BudgetPilot/config/environment"
	"BudgetPilot/middleware"
	route "BudgetPilot/routes"
	"BudgetPilot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := utils.NewLogger()
	cfg := environment.Load()
	gin.SetMode(cfg.GinMode)

	// Datasets load lazily unless PRELOAD_DATASETS is set
	store := database.InitDatasets(cfg, logger)

	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	route.RegisterRoutes(r, store)

	logger.Info("🚀 Server running on port %s (data dirs: %v)", cfg.Port, cfg.DataDirs)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
