package model

import (
	"time"
)

// BusinessCategory is the storefront kind of a business
type BusinessCategory string

const (
	CategoryFood   BusinessCategory = "food"
	CategoryMarket BusinessCategory = "market"
)

// ValidBusinessCategory reports whether the category is one of the enumerated values
func ValidBusinessCategory(category string) bool {
	switch BusinessCategory(category) {
	case CategoryFood, CategoryMarket:
		return true
	}
	return false
}

// Business is a registered food or market business. Email is stored lowercase
// and is the identity used by the panel endpoints.
type Business struct {
	ID       uint             `gorm:"primarykey" json:"id"`
	Email    string           `gorm:"uniqueIndex;not null" json:"email"`
	Name     string           `gorm:"not null" json:"name"`
	Phone    *string          `json:"phone"`
	Address  *string          `gorm:"type:text" json:"address"`
	Category BusinessCategory `gorm:"type:varchar(20);index;not null" json:"category"`
	PhotoURL *string          `json:"photo_url"`

	// Delivery constraints shown on the storefront
	MinOrderAmount   *float64 `json:"min_order_amount"`
	DeliveryTimeMins *int     `json:"delivery_time_mins"`
	DeliveryRadiusKm *float64 `json:"delivery_radius_km"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`

	// Weekly schedule as a day-keyed JSON object ("mon".."sun"); evaluated at
	// read time, never interpreted by the database
	WorkingHours *string `gorm:"type:text" json:"working_hours"`

	// Registration details collected by the onboarding form
	AuthorizedName    *string `json:"authorized_name"`
	AuthorizedSurname *string `json:"authorized_surname"`
	CompanyName       *string `json:"company_name"`
	TCKN              *string `gorm:"column:tckn" json:"tckn"`
	RestaurantName    *string `json:"restaurant_name"`
	KitchenType       *string `json:"kitchen_type"`
	City              *string `json:"city"`
	District          *string `json:"district"`
	Neighborhood      *string `json:"neighborhood"`
	OpenAddress       *string `gorm:"type:text" json:"open_address"`

	// Email/password login is optional; businesses registered through Google
	// have no credential
	PasswordHash *string `json:"-"`

	// Manual open/closed toggle set from the panel. Nil means the business
	// never touched the toggle and counts as open.
	IsOpen *bool `json:"-"`

	Products []Product `gorm:"foreignKey:BusinessID" json:"-"`
	Orders   []Order   `gorm:"foreignKey:BusinessID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Business) TableName() string {
	return "businesses"
}

// BusinessRegisterRequest onboarding payload (Google or email/password signup)
type BusinessRegisterRequest struct {
	Email             string   `json:"email" binding:"required"`
	Name              *string  `json:"name"`
	Phone             *string  `json:"phone"`
	Address           *string  `json:"address"`
	Category          string   `json:"category" binding:"required"`
	PhotoURL          *string  `json:"photo_url"`
	Password          *string  `json:"password"`
	MinOrderAmount    *float64 `json:"min_order_amount"`
	DeliveryTimeMins  *int     `json:"delivery_time_mins"`
	DeliveryRadiusKm  *float64 `json:"delivery_radius_km"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	WorkingHours      *string  `json:"working_hours"`
	AuthorizedName    *string  `json:"authorized_name"`
	AuthorizedSurname *string  `json:"authorized_surname"`
	CompanyName       *string  `json:"company_name"`
	TCKN              *string  `json:"tckn"`
	RestaurantName    *string  `json:"restaurant_name"`
	KitchenType       *string  `json:"kitchen_type"`
	City              *string  `json:"city"`
	District          *string  `json:"district"`
	Neighborhood      *string  `json:"neighborhood"`
	OpenAddress       *string  `json:"open_address"`
}

// BusinessLoginRequest panel email/password login
type BusinessLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// BusinessPasswordResetRequest dev-only password reset
type BusinessPasswordResetRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// BusinessProfileUpdateRequest partial profile update; absent fields are left
// untouched
type BusinessProfileUpdateRequest struct {
	Address          *string  `json:"address"`
	Phone            *string  `json:"phone"`
	PhotoURL         *string  `json:"photo_url"`
	MinOrderAmount   *float64 `json:"min_order_amount"`
	DeliveryTimeMins *int     `json:"delivery_time_mins"`
	DeliveryRadiusKm *float64 `json:"delivery_radius_km"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	WorkingHours     *string  `json:"working_hours"`
}

// BusinessStatusUpdateRequest manual open/closed toggle
type BusinessStatusUpdateRequest struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

// RatingSummary is the read-time rating projection for one business. Nil
// averages mean the business has no reviews yet.
type RatingSummary struct {
	Avg        *float64
	Count      int
	SpeedAvg   *float64
	ServiceAvg *float64
	TasteAvg   *float64
}

// BusinessPublic is the storefront projection of a business. IsOpen carries
// the effective open state (manual toggle AND schedule), not the stored flag.
type BusinessPublic struct {
	ID               uint             `json:"id"`
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	Phone            *string          `json:"phone"`
	Address          *string          `json:"address"`
	Category         BusinessCategory `json:"category"`
	PhotoURL         *string          `json:"photo_url"`
	MinOrderAmount   *float64         `json:"min_order_amount"`
	DeliveryTimeMins *int             `json:"delivery_time_mins"`
	DeliveryRadiusKm *float64         `json:"delivery_radius_km"`
	Latitude         *float64         `json:"latitude"`
	Longitude        *float64         `json:"longitude"`
	IsOpen           bool             `json:"is_open"`
	RatingAvg        *float64         `json:"rating_avg"`
	RatingCount      *int             `json:"rating_count"`
	RatingSpeedAvg   *float64         `json:"rating_speed_avg"`
	RatingServiceAvg *float64         `json:"rating_service_avg"`
	RatingTasteAvg   *float64         `json:"rating_taste_avg"`
}

// BusinessProfile is the panel projection: everything public plus the
// onboarding details
type BusinessProfile struct {
	BusinessPublic
	WorkingHours      *string `json:"working_hours"`
	AuthorizedName    *string `json:"authorized_name"`
	AuthorizedSurname *string `json:"authorized_surname"`
	CompanyName       *string `json:"company_name"`
	TCKN              *string `json:"tckn"`
	RestaurantName    *string `json:"restaurant_name"`
	KitchenType       *string `json:"kitchen_type"`
	City              *string `json:"city"`
	District          *string `json:"district"`
	Neighborhood      *string `json:"neighborhood"`
	OpenAddress       *string `json:"open_address"`
}
