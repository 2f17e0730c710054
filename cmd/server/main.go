package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eatyapp/eaty-backend/config"
	"github.com/eatyapp/eaty-backend/internal/app/controller"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	"github.com/eatyapp/eaty-backend/internal/db"
	"github.com/eatyapp/eaty-backend/internal/router"
	"github.com/eatyapp/eaty-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting EATY Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations before accepting traffic
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	businessRepo := repository.NewBusinessRepository(database)
	productRepo := repository.NewProductRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	recipeRepo := repository.NewRecipeRepository(database)
	notebookRepo := repository.NewNotebookRepository(database)
	customerRepo := repository.NewCustomerRepository(database)

	// Initialize services
	businessService := service.NewBusinessService(businessRepo, reviewRepo)
	productService := service.NewProductService(productRepo, businessRepo)
	orderService := service.NewOrderService(orderRepo, businessRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, orderRepo)
	recipeService := service.NewRecipeService(recipeRepo)
	notebookService := service.NewNotebookService(notebookRepo, recipeRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize controllers
	businessController := controller.NewBusinessController(businessService)
	productController := controller.NewProductController(productService)
	orderController := controller.NewOrderController(orderService)
	reviewController := controller.NewReviewController(reviewService)
	recipeController := controller.NewRecipeController(recipeService)
	notebookController := controller.NewNotebookController(notebookService)
	customerController := controller.NewCustomerController(customerService)

	// Setup router
	r := router.NewRouter(
		businessController,
		productController,
		orderController,
		reviewController,
		recipeController,
		notebookController,
		customerController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
