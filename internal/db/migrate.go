package db

import (
	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations. AutoMigrate is additive and idempotent:
// columns and indexes that already exist are left alone, so this is safe to
// run on every startup before the server accepts traffic.
func Migrate(database *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
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
	}

	if err := database.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
