package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mansurjr/Bulivard/internal/adapters/http/middleware"
	"github.com/mansurjr/Bulivard/internal/adapters/http/routes"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/mansurjr/Bulivard/docs" // Swagger docs
)

// @title Bulivard API
// @version 1.0
// @description Restaurant reservation backend: accounts, restaurants, seats and bookings.

// @contact.name API Support
// @contact.email support@bulivard.app

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the bootstrap creator account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed creator account: %v", err)
	}

	// Daily reservation digest for managers (08:30)
	mailService := services.NewMailService(cfg)
	reminderService := services.NewReminderService(
		repositories.NewRestaurantRepository(db),
		repositories.NewReservationRepository(db),
		repositories.NewUserRepository(db),
		mailService,
	)
	reminderService.Start()
	defer reminderService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Bulivard API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
