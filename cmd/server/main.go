package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/akhilvb87/community-kitchen-app/internal/config"
	"github.com/akhilvb87/community-kitchen-app/internal/constants"
	"github.com/akhilvb87/community-kitchen-app/internal/handlers"
	"github.com/akhilvb87/community-kitchen-app/internal/logger"
	"github.com/akhilvb87/community-kitchen-app/internal/middleware"
	"github.com/akhilvb87/community-kitchen-app/internal/repository"
	"github.com/akhilvb87/community-kitchen-app/internal/services"
	"github.com/akhilvb87/community-kitchen-app/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Open the data file
	st, err := store.Open(cfg.DBPath, log)
	if err != nil {
		log.Error("failed to open data file", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}

	// Seed default accounts
	if err := store.Seed(st, log); err != nil {
		log.Error("failed to seed default users", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(st)
	menuRepo := repository.NewMenuRepository(st)
	orderRepo := repository.NewOrderRepository(st)
	expenseRepo := repository.NewExpenseRepository(st)

	// Services
	userService := services.NewUserService(userRepo)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, userRepo)
	reportService := services.NewReportService(menuRepo, orderRepo, userRepo)
	expenseService := services.NewExpenseService(expenseRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService, reportService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	// Initialize Gin router
	r := gin.Default()

	// CORS for the browser client
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Cookie session carrying the logged-in user id
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Community Kitchen API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", userHandler.Logout)
			users.GET("/me", middleware.RequireAuth(), userHandler.Me)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.ChangeRole)
			users.DELETE("/:id", userHandler.Delete)
			users.POST("/:id/phones", userHandler.AddPhone)
			users.DELETE("/:id/phones/:phone", userHandler.RemovePhone)
		}

		menus := api.Group("/menus")
		{
			menus.GET("", menuHandler.ListByDate)
			menus.POST("", menuHandler.Publish)
			menus.PUT("/:id", menuHandler.UpdateItems)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.POST("", orderHandler.Upsert)
			orders.POST("/cell", orderHandler.UpdateCell)
			orders.GET("/stats", orderHandler.Stats)
			orders.GET("/details", orderHandler.Details)
			orders.GET("/matrix", orderHandler.Matrix)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}
	}

	// Start server
	log.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
