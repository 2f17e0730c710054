package service

import (
	"errors"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("Product not found")

type ProductService interface {
	AddProduct(businessEmail string, req *model.ProductUpsertRequest) error
	GetMenu(businessID uint) ([]model.Product, error)
	UpdateProduct(productID uint, req *model.ProductUpsertRequest) error
	DeleteProduct(productID uint) error
	ReorderProducts(items []model.ProductReorderItem) error
}

type productService struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
}

func NewProductService(productRepo repository.ProductRepository, businessRepo repository.BusinessRepository) ProductService {
	return &productService{productRepo: productRepo, businessRepo: businessRepo}
}

func (s *productService) AddProduct(businessEmail string, req *model.ProductUpsertRequest) error {
	business, err := s.businessRepo.FindByEmail(businessEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBusinessNotFound
		}
		return err
	}

	product := &model.Product{
		BusinessID:  business.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
	}
	return s.productRepo.Create(product)
}

// GetMenu returns the business's products in panel sort order. An unknown
// business id yields an empty menu, not an error.
func (s *productService) GetMenu(businessID uint) ([]model.Product, error) {
	products, err := s.productRepo.FindByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *productService) UpdateProduct(productID uint, req *model.ProductUpsertRequest) error {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.ImageURL = req.ImageURL
	product.IsAvailable = req.IsAvailable == nil || *req.IsAvailable
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(productID uint) error {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(productID)
}

func (s *productService) ReorderProducts(items []model.ProductReorderItem) error {
	return s.productRepo.UpdateSequences(items)
}
