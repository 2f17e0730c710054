package repository

import (
	"errors"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type NotebookRepository interface {
	Create(notebook *model.RecipeNotebook) error
	FindByID(id uint) (*model.RecipeNotebook, error)
	FindAll(ownerEmail string) ([]model.RecipeNotebook, error)
	Update(notebook *model.RecipeNotebook) error
	Delete(id uint) error
	AddItem(notebookID, recipeID uint) error
	RemoveItem(notebookID, recipeID uint) error
}

type notebookRepository struct {
	db *gorm.DB
}

func NewNotebookRepository(db *gorm.DB) NotebookRepository {
	return &notebookRepository{db: db}
}

func (r *notebookRepository) Create(notebook *model.RecipeNotebook) error {
	return r.db.Create(notebook).Error
}

func (r *notebookRepository) FindByID(id uint) (*model.RecipeNotebook, error) {
	var notebook model.RecipeNotebook
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&notebook, id).Error
	if err != nil {
		return nil, err
	}
	return &notebook, nil
}

func (r *notebookRepository) FindAll(ownerEmail string) ([]model.RecipeNotebook, error) {
	query := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at DESC")
	if ownerEmail != "" {
		query = query.Where("LOWER(owner_email) = LOWER(?)", ownerEmail)
	}

	var notebooks []model.RecipeNotebook
	if err := query.Find(&notebooks).Error; err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (r *notebookRepository) Update(notebook *model.RecipeNotebook) error {
	return r.db.Save(notebook).Error
}

// Delete removes the notebook and its membership rows. The recipes themselves
// are untouched.
func (r *notebookRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notebook_id = ?", id).Delete(&model.RecipeNotebookItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RecipeNotebook{}, id).Error
	})
}

// AddItem is idempotent: saving an already-saved recipe is a no-op
func (r *notebookRepository) AddItem(notebookID, recipeID uint) error {
	var existing model.RecipeNotebookItem
	err := r.db.
		Where("notebook_id = ? AND recipe_id = ?", notebookID, recipeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item := model.RecipeNotebookItem{NotebookID: notebookID, RecipeID: recipeID}
	return r.db.Create(&item).Error
}

func (r *notebookRepository) RemoveItem(notebookID, recipeID uint) error {
	return r.db.
		Where("notebook_id = ? AND recipe_id = ?", notebookID, recipeID).
		Delete(&model.RecipeNotebookItem{}).Error
}
