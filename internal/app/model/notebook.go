package model

import (
	"time"
)

// RecipeNotebook is a named collection of saved recipes owned by an email.
// Deleting a notebook removes its membership rows but leaves the recipes.
type RecipeNotebook struct {
	ID            uint                 `gorm:"primarykey" json:"id"`
	Title         string               `gorm:"not null" json:"title"`
	CoverImageURL *string              `json:"cover_image_url"`
	OwnerName     *string              `json:"owner_name"`
	OwnerEmail    *string              `gorm:"index" json:"owner_email"`
	CreatedAt     time.Time            `json:"created_at"`
	Items         []RecipeNotebookItem `gorm:"foreignKey:NotebookID" json:"-"`
}

func (RecipeNotebook) TableName() string {
	return "recipe_notebooks"
}

// RecipeNotebookItem is a membership row. The composite unique index keeps a
// recipe saved at most once per notebook; display order is insertion order.
type RecipeNotebookItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	NotebookID uint      `gorm:"not null;index:idx_notebook_recipe,unique" json:"notebook_id"`
	RecipeID   uint      `gorm:"not null;index:idx_notebook_recipe,unique" json:"recipe_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (RecipeNotebookItem) TableName() string {
	return "recipe_notebook_items"
}

type RecipeNotebookCreateRequest struct {
	Title         string  `json:"title"`
	CoverImageURL *string `json:"cover_image_url"`
	OwnerName     *string `json:"owner_name"`
	OwnerEmail    *string `json:"owner_email"`
}

type RecipeNotebookUpdateRequest struct {
	Title         *string `json:"title"`
	CoverImageURL *string `json:"cover_image_url"`
}

type RecipeNotebookItemRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

// RecipeNotebookResponse lists member recipe ids in saved order
type RecipeNotebookResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	CoverImageURL *string   `json:"cover_image_url"`
	OwnerName     *string   `json:"owner_name"`
	OwnerEmail    *string   `json:"owner_email"`
	RecipeIDs     []uint    `json:"recipe_ids"`
	CreatedAt     time.Time `json:"created_at"`
}
