package repository

import (
	"errors"
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *model.Recipe) error
	FindByID(id uint) (*model.Recipe, error)
	FindAll(authorEmail string) ([]model.Recipe, error)
	Update(recipe *model.Recipe) error
	DeleteCascade(id uint) error
	CommentCounts(recipeIDs []uint) (map[uint]int, error)
	SaveCounts(recipeIDs []uint) (map[uint]int, error)
	LikedRecipeIDs(recipeIDs []uint, userEmail string) (map[uint]bool, error)
	ToggleLike(recipeID uint, userEmail string) (liked bool, likes int, err error)
	CreateComment(comment *model.RecipeComment) error
	FindComments(recipeID uint, limit int) ([]model.RecipeComment, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *model.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindByID(id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindAll(authorEmail string) ([]model.Recipe, error) {
	query := r.db.Order("created_at DESC")
	if authorEmail != "" {
		query = query.Where("LOWER(author_email) = ?", strings.ToLower(strings.TrimSpace(authorEmail)))
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Update(recipe *model.Recipe) error {
	return r.db.Save(recipe).Error
}

// DeleteCascade removes a recipe together with its comments, likes and
// notebook memberships in one transaction.
func (r *recipeRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeNotebookItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
}

type countRow struct {
	RecipeID uint
	Count    int
}

func (r *recipeRepository) CommentCounts(recipeIDs []uint) (map[uint]int, error) {
	return r.groupCounts(&model.RecipeComment{}, recipeIDs)
}

// SaveCounts counts notebook memberships per recipe across all notebooks
func (r *recipeRepository) SaveCounts(recipeIDs []uint) (map[uint]int, error) {
	return r.groupCounts(&model.RecipeNotebookItem{}, recipeIDs)
}

func (r *recipeRepository) groupCounts(table interface{}, recipeIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.Model(table).
		Select("recipe_id, COUNT(*) AS count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RecipeID] = row.Count
	}
	return counts, nil
}

func (r *recipeRepository) LikedRecipeIDs(recipeIDs []uint, userEmail string) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(recipeIDs))
	if len(recipeIDs) == 0 || userEmail == "" {
		return liked, nil
	}

	var ids []uint
	err := r.db.Model(&model.RecipeLike{}).
		Where("recipe_id IN ? AND user_email = ?", recipeIDs, strings.ToLower(strings.TrimSpace(userEmail))).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// ToggleLike flips the caller's like on a recipe and keeps the denormalized
// counter in step, flooring at zero in case the counter drifted.
func (r *recipeRepository) ToggleLike(recipeID uint, userEmail string) (bool, int, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))
	var liked bool
	var likes int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.First(&recipe, recipeID).Error; err != nil {
			return err
		}

		var existing model.RecipeLike
		err := tx.Where("recipe_id = ? AND user_email = ?", recipeID, email).
			First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			likes = recipe.Likes - 1
			if likes < 0 {
				likes = 0
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := model.RecipeLike{RecipeID: recipeID, UserEmail: email}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
			likes = recipe.Likes + 1
		default:
			return err
		}

		return tx.Model(&model.Recipe{}).Where("id = ?", recipeID).
			Update("likes", likes).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

func (r *recipeRepository) CreateComment(comment *model.RecipeComment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Recipe{}).Where("id = ?", comment.RecipeID).
			Update("comments", gorm.Expr("comments + 1")).Error
	})
}

func (r *recipeRepository) FindComments(recipeID uint, limit int) ([]model.RecipeComment, error) {
	var comments []model.RecipeComment
	err := r.db.
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
