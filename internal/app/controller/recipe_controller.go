package controller

import (
	"net/http"
	"strconv"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipeService service.RecipeService
}

func NewRecipeController(recipeService service.RecipeService) *RecipeController {
	return &RecipeController{recipeService: recipeService}
}

func (ctrl *RecipeController) CreateRecipe(c *gin.Context) {
	var req model.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	recipe, err := ctrl.recipeService.CreateRecipe(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (ctrl *RecipeController) UpdateRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	var req model.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	recipe, err := ctrl.recipeService.UpdateRecipe(uint(recipeID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes an author's recipe together with its comments, likes
// and notebook memberships. The caller identifies itself via the user_email
// query parameter.
func (ctrl *RecipeController) DeleteRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	if err := ctrl.recipeService.DeleteRecipe(uint(recipeID), c.Query("user_email")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

func (ctrl *RecipeController) ToggleLike(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	var req model.RecipeLikeToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	liked, likes, err := ctrl.recipeService.ToggleLike(uint(recipeID), req.UserEmail)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": likes})
}

// ListRecipes supports optional author_email (filter) and viewer_email
// (is_liked projection) query parameters
func (ctrl *RecipeController) ListRecipes(c *gin.Context) {
	recipes, err := ctrl.recipeService.ListRecipes(c.Query("author_email"), c.Query("viewer_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (ctrl *RecipeController) GetRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	recipe, err := ctrl.recipeService.GetRecipe(uint(recipeID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (ctrl *RecipeController) ListComments(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	comments, err := ctrl.recipeService.ListComments(uint(recipeID), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (ctrl *RecipeController) CreateComment(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	var req model.RecipeCommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	comment, err := ctrl.recipeService.CreateComment(uint(recipeID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}
