package service

import (
	"errors"
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrNotebookNotFound      = errors.New("Notebook not found")
	ErrNotebookTitleRequired = errors.New("Notebook title is required")
)

type NotebookService interface {
	CreateNotebook(req *model.RecipeNotebookCreateRequest) (*model.RecipeNotebookResponse, error)
	ListNotebooks(ownerEmail string) ([]model.RecipeNotebookResponse, error)
	UpdateNotebook(notebookID uint, req *model.RecipeNotebookUpdateRequest) (*model.RecipeNotebookResponse, error)
	DeleteNotebook(notebookID uint) error
	AddRecipe(notebookID, recipeID uint) (*model.RecipeNotebookResponse, error)
	RemoveRecipe(notebookID, recipeID uint) (*model.RecipeNotebookResponse, error)
}

type notebookService struct {
	notebookRepo repository.NotebookRepository
	recipeRepo   repository.RecipeRepository
}

func NewNotebookService(notebookRepo repository.NotebookRepository, recipeRepo repository.RecipeRepository) NotebookService {
	return &notebookService{notebookRepo: notebookRepo, recipeRepo: recipeRepo}
}

func (s *notebookService) CreateNotebook(req *model.RecipeNotebookCreateRequest) (*model.RecipeNotebookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrNotebookTitleRequired
	}

	notebook := &model.RecipeNotebook{
		Title:         title,
		CoverImageURL: req.CoverImageURL,
		OwnerName:     req.OwnerName,
		OwnerEmail:    req.OwnerEmail,
	}
	if err := s.notebookRepo.Create(notebook); err != nil {
		return nil, err
	}
	response := toNotebookResponse(notebook)
	return &response, nil
}

func (s *notebookService) ListNotebooks(ownerEmail string) ([]model.RecipeNotebookResponse, error) {
	notebooks, err := s.notebookRepo.FindAll(strings.TrimSpace(ownerEmail))
	if err != nil {
		return nil, err
	}

	result := make([]model.RecipeNotebookResponse, 0, len(notebooks))
	for i := range notebooks {
		result = append(result, toNotebookResponse(&notebooks[i]))
	}
	return result, nil
}

func (s *notebookService) UpdateNotebook(notebookID uint, req *model.RecipeNotebookUpdateRequest) (*model.RecipeNotebookResponse, error) {
	notebook, err := s.findNotebook(notebookID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrNotebookTitleRequired
		}
		notebook.Title = title
	}
	if req.CoverImageURL != nil {
		notebook.CoverImageURL = req.CoverImageURL
	}

	if err := s.notebookRepo.Update(notebook); err != nil {
		return nil, err
	}
	response := toNotebookResponse(notebook)
	return &response, nil
}

func (s *notebookService) DeleteNotebook(notebookID uint) error {
	if _, err := s.findNotebook(notebookID); err != nil {
		return err
	}
	return s.notebookRepo.Delete(notebookID)
}

// AddRecipe saves a recipe into a notebook; saving an already-saved recipe
// returns the notebook unchanged.
func (s *notebookService) AddRecipe(notebookID, recipeID uint) (*model.RecipeNotebookResponse, error) {
	if _, err := s.findNotebook(notebookID); err != nil {
		return nil, err
	}
	if _, err := s.recipeRepo.FindByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.notebookRepo.AddItem(notebookID, recipeID); err != nil {
		return nil, err
	}
	return s.reload(notebookID)
}

// RemoveRecipe is lenient: removing a recipe that is not in the notebook
// still returns the notebook.
func (s *notebookService) RemoveRecipe(notebookID, recipeID uint) (*model.RecipeNotebookResponse, error) {
	if _, err := s.findNotebook(notebookID); err != nil {
		return nil, err
	}
	if err := s.notebookRepo.RemoveItem(notebookID, recipeID); err != nil {
		return nil, err
	}
	return s.reload(notebookID)
}

func (s *notebookService) findNotebook(notebookID uint) (*model.RecipeNotebook, error) {
	notebook, err := s.notebookRepo.FindByID(notebookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotebookNotFound
		}
		return nil, err
	}
	return notebook, nil
}

func (s *notebookService) reload(notebookID uint) (*model.RecipeNotebookResponse, error) {
	notebook, err := s.findNotebook(notebookID)
	if err != nil {
		return nil, err
	}
	response := toNotebookResponse(notebook)
	return &response, nil
}

func toNotebookResponse(notebook *model.RecipeNotebook) model.RecipeNotebookResponse {
	recipeIDs := make([]uint, 0, len(notebook.Items))
	for _, item := range notebook.Items {
		recipeIDs = append(recipeIDs, item.RecipeID)
	}
	return model.RecipeNotebookResponse{
		ID:            notebook.ID,
		Title:         notebook.Title,
		CoverImageURL: notebook.CoverImageURL,
		OwnerName:     notebook.OwnerName,
		OwnerEmail:    notebook.OwnerEmail,
		RecipeIDs:     recipeIDs,
		CreatedAt:     notebook.CreatedAt,
	}
}
