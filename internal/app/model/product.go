package model

type Product struct {
	ID          uint     `gorm:"primarykey" json:"id"`
	BusinessID  uint     `gorm:"not null;index" json:"business_id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Category    string   `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable bool     `gorm:"default:true" json:"is_available"`
	Sequence    int      `gorm:"default:0" json:"sequence"`
	Business    Business `gorm:"foreignKey:BusinessID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductUpsertRequest is used for both create and full update. IsAvailable
// defaults to true when omitted.
type ProductUpsertRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

// ProductReorderItem carries one drag-and-drop position from the panel
type ProductReorderItem struct {
	ID       uint `json:"id" binding:"required"`
	Sequence int  `json:"sequence"`
}
