package model

import (
	"time"
)

// BusinessReview is a per-order review. The unique index on OrderID enforces
// one review per order at the storage layer; the service-level existence
// check only exists to give a friendly error.
//
// Rating is the legacy single score kept for old clients; the three
// sub-ratings were added later as nullable columns. Aggregation falls back to
// Rating wherever a sub-rating is null.
type BusinessReview struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	BusinessID    uint      `gorm:"not null;index" json:"business_id"`
	OrderID       uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	CustomerEmail string    `gorm:"index" json:"customer_email"`
	Rating        int       `gorm:"not null" json:"rating"`
	SpeedRating   *int      `json:"speed_rating"`
	ServiceRating *int      `json:"service_rating"`
	TasteRating   *int      `json:"taste_rating"`
	Comment       *string   `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `json:"created_at"`

	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
	Order    Order    `gorm:"foreignKey:OrderID" json:"-"`
}

func (BusinessReview) TableName() string {
	return "business_reviews"
}

type BusinessReviewCreateRequest struct {
	CustomerEmail string  `json:"customer_email" binding:"required"`
	Rating        int     `json:"rating"`
	SpeedRating   *int    `json:"speed_rating"`
	ServiceRating *int    `json:"service_rating"`
	TasteRating   *int    `json:"taste_rating"`
	Comment       *string `json:"comment"`
}
