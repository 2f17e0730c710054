package main

import (
	"github.com/eatyapp/eaty-backend/config"
	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/db"
	"github.com/eatyapp/eaty-backend/pkg/logger"
	"github.com/eatyapp/eaty-backend/pkg/util"
)

// Seeds a demo business with a small menu and one recipe for local
// development. Safe to re-run: it skips seeding when the business exists.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	const demoEmail = "demo@eaty.app"

	var count int64
	if err := database.Model(&model.Business{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		logger.Fatal("Failed to check demo business", err)
	}
	if count > 0 {
		logger.Info("Demo data already present, nothing to do")
		return
	}

	hash, err := util.HashPassword("demo123")
	if err != nil {
		logger.Fatal("Failed to hash demo password", err)
	}

	phone := "+90 555 000 0000"
	address := "Moda Cad. 1, Kadıköy, İstanbul"
	workingHours := `{"mon":{"open":"09:00","close":"22:00"},"tue":{"open":"09:00","close":"22:00"},"wed":{"open":"09:00","close":"22:00"},"thu":{"open":"09:00","close":"22:00"},"fri":{"open":"09:00","close":"23:00"},"sat":{"open":"10:00","close":"23:00"},"sun":{"closed":true}}`
	minOrder := 150.0

	business := model.Business{
		Email:          demoEmail,
		Name:           "Demo Lokanta",
		Phone:          &phone,
		Address:        &address,
		Category:       model.CategoryFood,
		MinOrderAmount: &minOrder,
		WorkingHours:   &workingHours,
		PasswordHash:   &hash,
	}
	if err := database.Create(&business).Error; err != nil {
		logger.Fatal("Failed to seed demo business", err)
	}

	products := []model.Product{
		{BusinessID: business.ID, Name: "Mercimek Çorbası", Description: "Günün çorbası", Price: 85, Category: "Çorbalar", IsAvailable: true, Sequence: 0},
		{BusinessID: business.ID, Name: "Adana Kebap", Description: "Acılı, közlenmiş biber ile", Price: 320, Category: "Kebaplar", IsAvailable: true, Sequence: 1},
		{BusinessID: business.ID, Name: "Künefe", Description: "Antep fıstıklı", Price: 160, Category: "Tatlılar", IsAvailable: true, Sequence: 2},
	}
	if err := database.Create(&products).Error; err != nil {
		logger.Fatal("Failed to seed demo products", err)
	}

	recipe := model.Recipe{
		Title:       "Ev Usulü Mercimek Çorbası",
		Ingredients: model.StringArray{"1 su bardağı kırmızı mercimek", "1 adet soğan", "1 yemek kaşığı un", "tuz"},
		Steps:       model.StringArray{"Soğanı kavurun", "Mercimek ve suyu ekleyin", "30 dakika pişirip blenderdan geçirin"},
		AuthorName:  "Demo Lokanta",
		AuthorEmail: demoEmail,
	}
	if err := database.Create(&recipe).Error; err != nil {
		logger.Fatal("Failed to seed demo recipe", err)
	}

	logger.Info("Demo data seeded", map[string]interface{}{
		"business_id": business.ID,
		"products":    len(products),
	})
}
