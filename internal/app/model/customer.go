package model

import (
	"time"
)

// CustomerProfile holds the name/phone a customer last saved at checkout.
// Customers have no account; the email is the whole identity.
type CustomerProfile struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	UpdatedAt time.Time `json:"-"`
}

func (CustomerProfile) TableName() string {
	return "customer_profiles"
}

// CustomerAddress is one saved delivery address. AddressID is the
// caller-supplied identifier the mobile app generates; Sequence preserves the
// display order the caller sent. The whole set is replaced wholesale on
// update.
type CustomerAddress struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	Email        string    `gorm:"index;not null" json:"-"`
	AddressID    string    `gorm:"index;not null" json:"-"`
	Label        string    `json:"-"`
	AddressLine  string    `gorm:"type:text" json:"-"`
	Neighborhood string    `json:"-"`
	District     string    `json:"-"`
	City         string    `json:"-"`
	Note         *string   `json:"-"`
	Phone        *string   `json:"-"`
	Latitude     float64   `json:"-"`
	Longitude    float64   `json:"-"`
	Sequence     int       `gorm:"default:0" json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (CustomerAddress) TableName() string {
	return "customer_addresses"
}

type CustomerProfileUpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type CustomerProfileResponse struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// CustomerAddressPayload is both the request and response shape for one
// address. Field casing follows the mobile client contract (addressLine).
type CustomerAddressPayload struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	AddressLine  string  `json:"addressLine"`
	Neighborhood string  `json:"neighborhood"`
	District     string  `json:"district"`
	City         string  `json:"city"`
	Note         *string `json:"note"`
	Phone        *string `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}
