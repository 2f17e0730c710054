package repository

import (
	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindByBusinessID(businessID uint) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
	UpdateSequences(items []model.ProductReorderItem) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByBusinessID(businessID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Where("business_id = ?", businessID).
		Order("sequence ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, id).Error
}

// UpdateSequences applies a batch of panel reorder positions in one
// transaction. Unknown ids are skipped, matching the drag-and-drop client
// which may race against deletions.
func (r *productRepository) UpdateSequences(items []model.ProductReorderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			err := tx.Model(&model.Product{}).
				Where("id = ?", item.ID).
				Update("sequence", item.Sequence).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
