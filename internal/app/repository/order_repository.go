package repository

import (
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByBusinessID(businessID uint) ([]model.Order, error)
	FindByCustomerEmail(email string) ([]model.Order, error)
	UpdateStatus(id uint, status string, reason *string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its item rows in a single transaction; a
// failed item insert rolls back the whole order.
func (r *orderRepository) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByBusinessID(businessID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Items").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByCustomerEmail(email string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Items").
		Where("LOWER(customer_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(id uint, status string, reason *string) error {
	updates := map[string]interface{}{
		"status":           status,
		"rejection_reason": reason,
	}
	return r.db.Model(&model.Order{}).Where("id = ?", id).Updates(updates).Error
}
