package service

import (
	"errors"
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound      = errors.New("Recipe not found")
	ErrRecipeTitleRequired = errors.New("Recipe title is required")
	ErrAuthorEmailRequired = errors.New("Author email is required")
	ErrUserEmailRequired   = errors.New("User email is required")
	ErrNotAuthorized       = errors.New("Not authorized")
	ErrCommentRequired     = errors.New("Comment is required")
)

// defaultAuthorName is shown when a recipe or comment arrives without one
const defaultAuthorName = "Kullanici"

const commentListMaxLimit = 200

type RecipeService interface {
	CreateRecipe(req *model.RecipeCreateRequest) (*model.RecipeResponse, error)
	UpdateRecipe(recipeID uint, req *model.RecipeUpdateRequest) (*model.RecipeResponse, error)
	DeleteRecipe(recipeID uint, userEmail string) error
	ToggleLike(recipeID uint, userEmail string) (bool, int, error)
	ListRecipes(authorEmail, viewerEmail string) ([]model.RecipeResponse, error)
	GetRecipe(recipeID uint) (*model.RecipeResponse, error)
	ListComments(recipeID uint, limit int) ([]model.RecipeComment, error)
	CreateComment(recipeID uint, req *model.RecipeCommentCreateRequest) (*model.RecipeComment, error)
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
}

func NewRecipeService(recipeRepo repository.RecipeRepository) RecipeService {
	return &recipeService{recipeRepo: recipeRepo}
}

func (s *recipeService) CreateRecipe(req *model.RecipeCreateRequest) (*model.RecipeResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrRecipeTitleRequired
	}
	authorEmail := strings.ToLower(strings.TrimSpace(req.AuthorEmail))
	if authorEmail == "" {
		return nil, ErrAuthorEmailRequired
	}
	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		authorName = defaultAuthorName
	}

	recipe := &model.Recipe{
		Title:          title,
		Subtitle:       req.Subtitle,
		Story:          req.Story,
		Ingredients:    model.StringArray(req.Ingredients),
		Steps:          model.StringArray(req.Steps),
		Category:       req.Category,
		Servings:       req.Servings,
		PrepTime:       req.PrepTime,
		CookTime:       req.CookTime,
		Equipment:      req.Equipment,
		Method:         req.Method,
		CoverImageURL:  req.CoverImageURL,
		GalleryImages:  model.StringArray(req.GalleryImages),
		AuthorName:     authorName,
		AuthorEmail:    authorEmail,
		AuthorPhotoURL: req.AuthorPhotoURL,
	}
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return s.project(recipe, nil)
}

func (s *recipeService) UpdateRecipe(recipeID uint, req *model.RecipeUpdateRequest) (*model.RecipeResponse, error) {
	recipe, err := s.findRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	if err := authorizeAuthor(req.UserEmail, recipe.AuthorEmail); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrRecipeTitleRequired
		}
		recipe.Title = title
	}
	if req.Subtitle != nil {
		recipe.Subtitle = req.Subtitle
	}
	if req.Story != nil {
		recipe.Story = req.Story
	}
	if req.Ingredients != nil {
		recipe.Ingredients = model.StringArray(req.Ingredients)
	}
	if req.Steps != nil {
		recipe.Steps = model.StringArray(req.Steps)
	}
	if req.Category != nil {
		recipe.Category = req.Category
	}
	if req.Servings != nil {
		recipe.Servings = req.Servings
	}
	if req.PrepTime != nil {
		recipe.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = req.CookTime
	}
	if req.Equipment != nil {
		recipe.Equipment = req.Equipment
	}
	if req.Method != nil {
		recipe.Method = req.Method
	}
	if req.CoverImageURL != nil {
		recipe.CoverImageURL = req.CoverImageURL
	}
	if req.GalleryImages != nil {
		recipe.GalleryImages = model.StringArray(req.GalleryImages)
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	return s.project(recipe, nil)
}

func (s *recipeService) DeleteRecipe(recipeID uint, userEmail string) error {
	recipe, err := s.findRecipe(recipeID)
	if err != nil {
		return err
	}
	email := userEmail
	if err := authorizeAuthor(&email, recipe.AuthorEmail); err != nil {
		return err
	}
	return s.recipeRepo.DeleteCascade(recipeID)
}

func (s *recipeService) ToggleLike(recipeID uint, userEmail string) (bool, int, error) {
	if strings.TrimSpace(userEmail) == "" {
		return false, 0, ErrUserEmailRequired
	}

	liked, likes, err := s.recipeRepo.ToggleLike(recipeID, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrRecipeNotFound
		}
		return false, 0, err
	}
	return liked, likes, nil
}

// ListRecipes returns recipes newest first, optionally filtered to one
// author. When a viewer email is given, each recipe carries whether that
// viewer has liked it; otherwise the field stays null.
func (s *recipeService) ListRecipes(authorEmail, viewerEmail string) ([]model.RecipeResponse, error) {
	recipes, err := s.recipeRepo.FindAll(authorEmail)
	if err != nil {
		return nil, err
	}

	recipeIDs := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	commentCounts, err := s.recipeRepo.CommentCounts(recipeIDs)
	if err != nil {
		return nil, err
	}
	saveCounts, err := s.recipeRepo.SaveCounts(recipeIDs)
	if err != nil {
		return nil, err
	}

	var likedIDs map[uint]bool
	if strings.TrimSpace(viewerEmail) != "" {
		likedIDs, err = s.recipeRepo.LikedRecipeIDs(recipeIDs, viewerEmail)
		if err != nil {
			return nil, err
		}
	}

	result := make([]model.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		result = append(result, toRecipeResponse(&recipes[i], likedIDs, commentCounts, saveCounts))
	}
	return result, nil
}

func (s *recipeService) GetRecipe(recipeID uint) (*model.RecipeResponse, error) {
	recipe, err := s.findRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	return s.project(recipe, nil)
}

func (s *recipeService) ListComments(recipeID uint, limit int) ([]model.RecipeComment, error) {
	if _, err := s.findRecipe(recipeID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = commentListMaxLimit
	}
	if limit > commentListMaxLimit {
		limit = commentListMaxLimit
	}

	comments, err := s.recipeRepo.FindComments(recipeID, limit)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.RecipeComment{}
	}
	return comments, nil
}

func (s *recipeService) CreateComment(recipeID uint, req *model.RecipeCommentCreateRequest) (*model.RecipeComment, error) {
	if _, err := s.findRecipe(recipeID); err != nil {
		return nil, err
	}

	body := strings.TrimSpace(req.Comment)
	if body == "" {
		return nil, ErrCommentRequired
	}

	authorName := defaultAuthorName
	if req.AuthorName != nil && strings.TrimSpace(*req.AuthorName) != "" {
		authorName = strings.TrimSpace(*req.AuthorName)
	}
	authorEmail := blankToNil(req.AuthorEmail)

	comment := &model.RecipeComment{
		RecipeID:    recipeID,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Comment:     body,
	}
	if err := s.recipeRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *recipeService) findRecipe(recipeID uint) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// project builds the single-recipe response with fresh comment/save counts
func (s *recipeService) project(recipe *model.Recipe, likedIDs map[uint]bool) (*model.RecipeResponse, error) {
	commentCounts, err := s.recipeRepo.CommentCounts([]uint{recipe.ID})
	if err != nil {
		return nil, err
	}
	saveCounts, err := s.recipeRepo.SaveCounts([]uint{recipe.ID})
	if err != nil {
		return nil, err
	}
	response := toRecipeResponse(recipe, likedIDs, commentCounts, saveCounts)
	return &response, nil
}

func authorizeAuthor(userEmail *string, authorEmail string) error {
	email := ""
	if userEmail != nil {
		email = strings.ToLower(strings.TrimSpace(*userEmail))
	}
	if email == "" {
		return ErrUserEmailRequired
	}
	if email != strings.ToLower(strings.TrimSpace(authorEmail)) {
		return ErrNotAuthorized
	}
	return nil
}

// toRecipeResponse prefers the freshly counted comment total and falls back
// to the stored counter when the count set does not cover the recipe.
func toRecipeResponse(recipe *model.Recipe, likedIDs map[uint]bool, commentCounts, saveCounts map[uint]int) model.RecipeResponse {
	comments := recipe.Comments
	if count, ok := commentCounts[recipe.ID]; ok {
		comments = count
	}

	response := model.RecipeResponse{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Subtitle:       recipe.Subtitle,
		Story:          recipe.Story,
		Ingredients:    recipe.Ingredients,
		Steps:          recipe.Steps,
		Category:       recipe.Category,
		Servings:       recipe.Servings,
		PrepTime:       recipe.PrepTime,
		CookTime:       recipe.CookTime,
		Equipment:      recipe.Equipment,
		Method:         recipe.Method,
		CoverImageURL:  recipe.CoverImageURL,
		GalleryImages:  recipe.GalleryImages,
		AuthorName:     recipe.AuthorName,
		AuthorEmail:    recipe.AuthorEmail,
		AuthorPhotoURL: recipe.AuthorPhotoURL,
		Likes:          recipe.Likes,
		Comments:       comments,
		Saves:          saveCounts[recipe.ID],
		CreatedAt:      recipe.CreatedAt,
	}
	if response.Ingredients == nil {
		response.Ingredients = []string{}
	}
	if response.Steps == nil {
		response.Steps = []string{}
	}
	if response.GalleryImages == nil {
		response.GalleryImages = []string{}
	}
	if likedIDs != nil {
		liked := likedIDs[recipe.ID]
		response.IsLiked = &liked
	}
	return response
}
