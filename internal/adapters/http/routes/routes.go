package routes

import (
	"github.com/mansurjr/Bulivard/internal/adapters/http/handlers"
	"github.com/mansurjr/Bulivard/internal/adapters/http/middleware"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	seatRepo := repositories.NewSeatRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	menuImageRepo := repositories.NewMenuImageRepository(db)

	// Initialize services
	mailService := services.NewMailService(cfg)
	authService := services.NewAuthService(userRepo, mailService, cfg)
	userService := services.NewUserService(userRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo, userRepo)
	seatService := services.NewSeatService(seatRepo, reservationRepo, restaurantRepo)
	reservationService := services.NewReservationService(reservationRepo, restaurantRepo, seatRepo, userRepo, mailService)
	menuService := services.NewMenuService(menuRepo, menuImageRepo, restaurantRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	seatHandler := handlers.NewSeatHandler(seatService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	menuHandler := handlers.NewMenuHandler(menuService)

	// Health check & root routes
	app.Get("/", healthHandler.Check)
	app.Get("/health", healthHandler.Check)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	authRoutes := app.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// User management routes
	userRoutes := app.Group("/user")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	setupUserRoutes(userRoutes, userHandler)

	// Restaurant routes
	restaurantRoutes := app.Group("/restaurant")
	restaurantRoutes.Use(middleware.AuthMiddleware(cfg))
	setupRestaurantRoutes(restaurantRoutes, restaurantHandler)

	// Seat routes
	seatRoutes := app.Group("/seat")
	seatRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSeatRoutes(seatRoutes, seatHandler)

	// Reservation routes
	reservationRoutes := app.Group("/reservation")
	reservationRoutes.Use(middleware.AuthMiddleware(cfg))
	setupReservationRoutes(reservationRoutes, reservationHandler)

	// Menu routes
	menuRoutes := app.Group("/menu")
	menuRoutes.Use(middleware.AuthMiddleware(cfg))
	setupMenuRoutes(menuRoutes, menuHandler)

	// Menu image routes
	menuImageRoutes := app.Group("/menu-image")
	menuImageRoutes.Use(middleware.AuthMiddleware(cfg))
	setupMenuImageRoutes(menuImageRoutes, menuHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (signup/signin are rate limited against brute force)
	router.Post("/signup/customer", middleware.AuthRateLimiter(), handler.SignupCustomer)
	router.Post("/signup/manager", middleware.AuthRateLimiter(), handler.SignupManager)
	router.Post("/signin", middleware.AuthRateLimiter(), handler.Signin)
	router.Get("/refresh", handler.Refresh)
	router.Get("/logout", handler.Logout)
	router.Get("/activate/:link", handler.Activate)
	router.Post("/forgot-password", middleware.StrictRateLimiter(), handler.ForgotPassword)
	router.Post("/reset-password/:link", middleware.StrictRateLimiter(), handler.ResetPassword)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Get("/activate-manager/:id",
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCreator),
		handler.ActivateManager)
}

// setupUserRoutes configures account management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Post("/admin", middleware.CreatorOnly(), handler.CreateAdmin)
	router.Get("/", middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCreator), handler.FindAll)
	router.Get("/:id", middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCreator), handler.FindOne)
	router.Patch("/:id", middleware.CreatorOnly(), handler.Update)
	router.Delete("/:id", middleware.CreatorOnly(), handler.Remove)
}

// setupRestaurantRoutes configures restaurant routes
func setupRestaurantRoutes(router fiber.Router, handler *handlers.RestaurantHandler) {
	router.Post("/", middleware.ManagerOrAdmin(), handler.Create)
	router.Get("/", middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleCustomer), handler.FindAll)
	router.Get("/my", middleware.RoleMiddleware(domain.RoleManager), handler.FindMine)
	router.Get("/:id", middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleCustomer), handler.FindOne)
	router.Patch("/:id", middleware.ManagerOrAdmin(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Remove)
}

// setupSeatRoutes configures seat routes
func setupSeatRoutes(router fiber.Router, handler *handlers.SeatHandler) {
	router.Post("/", middleware.ManagerOrAdmin(), handler.Create)
	router.Get("/", middleware.ManagerOrAdmin(), handler.FindAll)
	router.Get("/free/list/:restaurantId",
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RoleCustomer),
		handler.FreeSeats)
	router.Get("/:id", middleware.ManagerOrAdmin(), handler.FindOne)
	router.Patch("/:id", middleware.ManagerOrAdmin(), handler.Update)
	router.Delete("/:id", middleware.ManagerOrAdmin(), handler.Remove)
}

// setupReservationRoutes configures reservation routes
func setupReservationRoutes(router fiber.Router, handler *handlers.ReservationHandler) {
	router.Post("/", middleware.RoleMiddleware(domain.RoleCustomer, domain.RoleManager), handler.Create)
	router.Get("/", middleware.ManagerOrAdmin(), handler.FindAll)
	router.Get("/my",
		middleware.RoleMiddleware(domain.RoleCustomer, domain.RoleManager, domain.RoleAdmin),
		handler.GetOwn)
	router.Get("/activate/:id", middleware.RoleMiddleware(domain.RoleManager), handler.CheckIn)
	router.Get("/:id", middleware.ManagerOrAdmin(), handler.FindOne)
	router.Patch("/:id", middleware.ManagerOrAdmin(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Remove)
}

// setupMenuRoutes configures menu routes
func setupMenuRoutes(router fiber.Router, handler *handlers.MenuHandler) {
	router.Post("/", middleware.ManagerOrAdmin(), handler.CreateMenu)
	router.Get("/", handler.FindAllMenus)
	router.Get("/:id", handler.FindMenu)
	router.Patch("/:id", middleware.ManagerOrAdmin(), handler.UpdateMenu)
	router.Delete("/:id", middleware.AdminOnly(), handler.RemoveMenu)
}

// setupMenuImageRoutes configures menu image routes
func setupMenuImageRoutes(router fiber.Router, handler *handlers.MenuHandler) {
	router.Post("/", middleware.ManagerOrAdmin(), handler.CreateImage)
	router.Get("/", handler.FindAllImages)
	router.Get("/:id", handler.FindImage)
	router.Patch("/:id", middleware.ManagerOrAdmin(), handler.UpdateImage)
	router.Delete("/:id", middleware.AdminOnly(), handler.RemoveImage)
}
