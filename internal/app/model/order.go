package model

import (
	"time"
)

// OrderStatusPending is the initial status of every order. The remaining
// statuses are free-form strings driven by the panel UI; only the delivered
// variants are interpreted by the backend (see review admission).
const (
	OrderStatusPending   = "Onay Bekliyor"
	OrderStatusDelivered = "Teslim Edildi"
)

// Order references its customer by email only; there is no customer account
// table. Item rows snapshot product name and price at order time.
type Order struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	BusinessID      uint        `gorm:"not null;index" json:"business_id"`
	CustomerEmail   string      `gorm:"index" json:"customer_email"`
	CustomerName    *string     `json:"customer_name"`
	CustomerPhone   *string     `json:"customer_phone"`
	CustomerAddress string      `gorm:"type:text" json:"customer_address"`
	CustomerNote    *string     `gorm:"type:text" json:"customer_note"`
	TotalPrice      float64     `json:"total_price"`
	Status          string      `gorm:"default:'Onay Bekliyor'" json:"status"`
	RejectionReason *string     `json:"rejection_reason"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Business        Business    `gorm:"foreignKey:BusinessID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID          uint    `gorm:"primarykey" json:"-"`
	OrderID     uint    `gorm:"not null;index" json:"-"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type OrderItemCreateRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	Price       float64 `json:"price"`
}

// OrderCreateRequest checkout payload. TotalPrice is taken as-is from the
// caller and never recomputed from items.
type OrderCreateRequest struct {
	BusinessID      uint                     `json:"business_id" binding:"required"`
	CustomerEmail   string                   `json:"customer_email" binding:"required"`
	CustomerName    *string                  `json:"customer_name"`
	CustomerPhone   *string                  `json:"customer_phone"`
	CustomerAddress string                   `json:"customer_address" binding:"required"`
	CustomerNote    *string                  `json:"customer_note"`
	TotalPrice      float64                  `json:"total_price"`
	Items           []OrderItemCreateRequest `json:"items" binding:"required"`
}

// OrderStatusUpdateRequest panel status transition; reason is only persisted
// for rejections
type OrderStatusUpdateRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"reason"`
}

// BusinessOrderResponse is the panel view of one incoming order
type BusinessOrderResponse struct {
	ID              uint        `json:"id"`
	CustomerName    *string     `json:"customer_name"`
	CustomerPhone   *string     `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	CustomerNote    *string     `json:"customer_note"`
	TotalPrice      float64     `json:"total_price"`
	Status          string      `json:"status"`
	RejectionReason *string     `json:"rejection_reason"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// CustomerOrderResponse is the order history view with joined business fields
// and a reviewed flag
type CustomerOrderResponse struct {
	ID               uint             `json:"id"`
	BusinessID       uint             `json:"business_id"`
	BusinessName     string           `json:"business_name"`
	BusinessEmail    *string          `json:"business_email"`
	BusinessPhotoURL *string          `json:"business_photo_url"`
	BusinessAddress  *string          `json:"business_address"`
	BusinessCategory BusinessCategory `json:"business_category"`
	Status           string           `json:"status"`
	TotalPrice       float64          `json:"total_price"`
	CustomerAddress  string           `json:"customer_address"`
	CreatedAt        time.Time        `json:"created_at"`
	Items            []OrderItem      `json:"items"`
	Reviewed         bool             `json:"reviewed"`
}
