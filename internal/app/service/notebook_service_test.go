package service

import (
	"testing"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"github.com/eatyapp/eaty-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupNotebookServiceTest(t *testing.T) (NotebookService, RecipeService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	notebookRepo := repository.NewNotebookRepository(testDB)
	recipeRepo := repository.NewRecipeRepository(testDB)
	return NewNotebookService(notebookRepo, recipeRepo), NewRecipeService(recipeRepo), testDB
}

func TestCreateNotebook_RequiresTitle(t *testing.T) {
	notebookService, _, _ := setupNotebookServiceTest(t)

	_, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{Title: "  "})
	assert.ErrorIs(t, err, ErrNotebookTitleRequired)

	notebook, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{
		Title:      "Favoriler",
		OwnerEmail: strPtr("ayse@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Favoriler", notebook.Title)
	assert.Empty(t, notebook.RecipeIDs)
}

func TestListNotebooks_OwnerFilter(t *testing.T) {
	notebookService, _, _ := setupNotebookServiceTest(t)

	_, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{
		Title:      "Favoriler",
		OwnerEmail: strPtr("ayse@example.com"),
	})
	require.NoError(t, err)
	_, err = notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{
		Title:      "Tatlılar",
		OwnerEmail: strPtr("mehmet@example.com"),
	})
	require.NoError(t, err)

	all, err := notebookService.ListNotebooks("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := notebookService.ListNotebooks("AYSE@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Favoriler", mine[0].Title)
}

func TestNotebookMembership_IdempotentAddAndOrder(t *testing.T) {
	notebookService, recipeService, _ := setupNotebookServiceTest(t)

	notebook, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{Title: "Favoriler"})
	require.NoError(t, err)

	var recipeIDs []uint
	for _, title := range []string{"Çorba", "Kebap", "Künefe"} {
		recipe, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
			Title:       title,
			AuthorName:  "Ayşe",
			AuthorEmail: "ayse@example.com",
		})
		require.NoError(t, err)
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	for _, id := range recipeIDs {
		_, err := notebookService.AddRecipe(notebook.ID, id)
		require.NoError(t, err)
	}

	// saving again is a no-op
	updated, err := notebookService.AddRecipe(notebook.ID, recipeIDs[0])
	require.NoError(t, err)
	assert.Equal(t, recipeIDs, updated.RecipeIDs)

	_, err = notebookService.AddRecipe(notebook.ID, 9999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	_, err = notebookService.AddRecipe(9999, recipeIDs[0])
	assert.ErrorIs(t, err, ErrNotebookNotFound)
}

func TestNotebookMembership_Remove(t *testing.T) {
	notebookService, recipeService, _ := setupNotebookServiceTest(t)

	notebook, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{Title: "Favoriler"})
	require.NoError(t, err)
	recipe, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title:       "Çorba",
		AuthorName:  "Ayşe",
		AuthorEmail: "ayse@example.com",
	})
	require.NoError(t, err)

	_, err = notebookService.AddRecipe(notebook.ID, recipe.ID)
	require.NoError(t, err)

	updated, err := notebookService.RemoveRecipe(notebook.ID, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.RecipeIDs)

	// removing a recipe that is not saved is not an error
	updated, err = notebookService.RemoveRecipe(notebook.ID, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.RecipeIDs)
}

func TestUpdateNotebook(t *testing.T) {
	notebookService, _, _ := setupNotebookServiceTest(t)

	notebook, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{Title: "Favoriler"})
	require.NoError(t, err)

	_, err = notebookService.UpdateNotebook(notebook.ID, &model.RecipeNotebookUpdateRequest{Title: strPtr(" ")})
	assert.ErrorIs(t, err, ErrNotebookTitleRequired)

	updated, err := notebookService.UpdateNotebook(notebook.ID, &model.RecipeNotebookUpdateRequest{
		Title:         strPtr("Denenecekler"),
		CoverImageURL: strPtr("https://cdn.example.com/cover.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Denenecekler", updated.Title)

	_, err = notebookService.UpdateNotebook(9999, &model.RecipeNotebookUpdateRequest{})
	assert.ErrorIs(t, err, ErrNotebookNotFound)
}

func TestDeleteNotebook_RemovesMembershipsKeepsRecipes(t *testing.T) {
	notebookService, recipeService, testDB := setupNotebookServiceTest(t)

	notebook, err := notebookService.CreateNotebook(&model.RecipeNotebookCreateRequest{Title: "Favoriler"})
	require.NoError(t, err)
	recipe, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title:       "Çorba",
		AuthorName:  "Ayşe",
		AuthorEmail: "ayse@example.com",
	})
	require.NoError(t, err)
	_, err = notebookService.AddRecipe(notebook.ID, recipe.ID)
	require.NoError(t, err)

	require.NoError(t, notebookService.DeleteNotebook(notebook.ID))

	var itemCount int64
	testDB.Model(&model.RecipeNotebookItem{}).Where("notebook_id = ?", notebook.ID).Count(&itemCount)
	assert.Zero(t, itemCount)

	// the recipe itself survives
	_, err = recipeService.GetRecipe(recipe.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, notebookService.DeleteNotebook(notebook.ID), ErrNotebookNotFound)
}
