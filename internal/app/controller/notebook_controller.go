package controller

import (
	"net/http"
	"strconv"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type NotebookController struct {
	notebookService service.NotebookService
}

func NewNotebookController(notebookService service.NotebookService) *NotebookController {
	return &NotebookController{notebookService: notebookService}
}

func (ctrl *NotebookController) CreateNotebook(c *gin.Context) {
	var req model.RecipeNotebookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	notebook, err := ctrl.notebookService.CreateNotebook(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notebook)
}

func (ctrl *NotebookController) ListNotebooks(c *gin.Context) {
	notebooks, err := ctrl.notebookService.ListNotebooks(c.Query("owner_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notebooks)
}

func (ctrl *NotebookController) UpdateNotebook(c *gin.Context) {
	notebookID, err := strconv.ParseUint(c.Param("notebook_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid notebook id")
		return
	}

	var req model.RecipeNotebookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	notebook, err := ctrl.notebookService.UpdateNotebook(uint(notebookID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notebook)
}

func (ctrl *NotebookController) DeleteNotebook(c *gin.Context) {
	notebookID, err := strconv.ParseUint(c.Param("notebook_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid notebook id")
		return
	}

	if err := ctrl.notebookService.DeleteNotebook(uint(notebookID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notebook deleted"})
}

func (ctrl *NotebookController) AddRecipe(c *gin.Context) {
	notebookID, err := strconv.ParseUint(c.Param("notebook_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid notebook id")
		return
	}

	var req model.RecipeNotebookItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	notebook, err := ctrl.notebookService.AddRecipe(uint(notebookID), req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notebook)
}

func (ctrl *NotebookController) RemoveRecipe(c *gin.Context) {
	notebookID, err := strconv.ParseUint(c.Param("notebook_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid notebook id")
		return
	}
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid recipe id")
		return
	}

	notebook, err := ctrl.notebookService.RemoveRecipe(uint(notebookID), uint(recipeID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notebook)
}
