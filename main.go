package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/Thuanphan093164/Qly-NhaHang/config"
	"github.com/Thuanphan093164/Qly-NhaHang/database"
	"github.com/Thuanphan093164/Qly-NhaHang/middlewares"
	"github.com/Thuanphan093164/Qly-NhaHang/router"
	"github.com/Thuanphan093164/Qly-NhaHang/services"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed: %v", err)
	}

	// Prepared flags are transient kitchen state; a cron job sweeps
	// expired entries so the store never grows unbounded.
	prepared := services.NewPreparedStore(services.DefaultPreparedTTL)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 15m", prepared.Sweep); err != nil {
		utils.ErrorLogger.Fatalf("Failed to schedule prepared-flag sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, prepared)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
