package service

import (
	"testing"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"github.com/eatyapp/eaty-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB, *model.Business) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	businessRepo := repository.NewBusinessRepository(testDB)
	productService := NewProductService(productRepo, businessRepo)

	business := &model.Business{
		Email:    "kebapci@example.com",
		Name:     "Kebapçı Mahmut",
		Category: model.CategoryFood,
	}
	require.NoError(t, testDB.Create(business).Error)

	return productService, testDB, business
}

func TestAddProduct(t *testing.T) {
	productService, _, business := setupProductServiceTest(t)

	err := productService.AddProduct("kebapci@example.com", &model.ProductUpsertRequest{
		Name:     "Adana Kebap",
		Price:    320,
		Category: "Kebaplar",
	})
	require.NoError(t, err)

	menu, err := productService.GetMenu(business.ID)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Adana Kebap", menu[0].Name)
	// availability defaults to true when omitted
	assert.True(t, menu[0].IsAvailable)

	err = productService.AddProduct("yok@example.com", &model.ProductUpsertRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestGetMenu_SortedBySequence(t *testing.T) {
	productService, testDB, business := setupProductServiceTest(t)

	products := []model.Product{
		{BusinessID: business.ID, Name: "Künefe", Price: 160, Sequence: 2, IsAvailable: true},
		{BusinessID: business.ID, Name: "Çorba", Price: 85, Sequence: 0, IsAvailable: true},
		{BusinessID: business.ID, Name: "Kebap", Price: 320, Sequence: 1, IsAvailable: true},
	}
	require.NoError(t, testDB.Create(&products).Error)

	menu, err := productService.GetMenu(business.ID)
	require.NoError(t, err)
	require.Len(t, menu, 3)
	assert.Equal(t, "Çorba", menu[0].Name)
	assert.Equal(t, "Kebap", menu[1].Name)
	assert.Equal(t, "Künefe", menu[2].Name)

	empty, err := productService.GetMenu(9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestUpdateProduct(t *testing.T) {
	productService, testDB, business := setupProductServiceTest(t)

	product := &model.Product{BusinessID: business.ID, Name: "Kebap", Price: 320, IsAvailable: true}
	require.NoError(t, testDB.Create(product).Error)

	unavailable := false
	err := productService.UpdateProduct(product.ID, &model.ProductUpsertRequest{
		Name:        "Adana Kebap",
		Price:       350,
		Category:    "Kebaplar",
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)

	var stored model.Product
	require.NoError(t, testDB.First(&stored, product.ID).Error)
	assert.Equal(t, "Adana Kebap", stored.Name)
	assert.Equal(t, 350.0, stored.Price)
	assert.False(t, stored.IsAvailable)

	err = productService.UpdateProduct(9999, &model.ProductUpsertRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	productService, testDB, business := setupProductServiceTest(t)

	product := &model.Product{BusinessID: business.ID, Name: "Kebap", Price: 320}
	require.NoError(t, testDB.Create(product).Error)

	require.NoError(t, productService.DeleteProduct(product.ID))
	assert.ErrorIs(t, productService.DeleteProduct(product.ID), ErrProductNotFound)
}

func TestReorderProducts_SkipsUnknownIDs(t *testing.T) {
	productService, testDB, business := setupProductServiceTest(t)

	first := &model.Product{BusinessID: business.ID, Name: "Çorba", Price: 85, Sequence: 0}
	second := &model.Product{BusinessID: business.ID, Name: "Kebap", Price: 320, Sequence: 1}
	require.NoError(t, testDB.Create(first).Error)
	require.NoError(t, testDB.Create(second).Error)

	err := productService.ReorderProducts([]model.ProductReorderItem{
		{ID: first.ID, Sequence: 1},
		{ID: second.ID, Sequence: 0},
		{ID: 9999, Sequence: 5},
	})
	require.NoError(t, err)

	menu, err := productService.GetMenu(business.ID)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "Kebap", menu[0].Name)
	assert.Equal(t, "Çorba", menu[1].Name)
}
