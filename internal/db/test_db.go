package db

import (
	"fmt"
	"log"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB() (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	err = database.AutoMigrate(
		&model.Business{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.BusinessReview{},
		&model.Recipe{},
		&model.RecipeComment{},
		&model.RecipeLike{},
		&model.RecipeNotebook{},
		&model.RecipeNotebookItem{},
		&model.CustomerProfile{},
		&model.CustomerAddress{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return database, nil
}

// CleanupTestDB closes the test database connection
func CleanupTestDB(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		log.Printf("failed to get test database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}
