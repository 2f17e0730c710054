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

func setupRecipeServiceTest(t *testing.T) (RecipeService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	recipeRepo := repository.NewRecipeRepository(testDB)
	return NewRecipeService(recipeRepo), testDB
}

func createTestRecipe(t *testing.T, recipeService RecipeService) *model.RecipeResponse {
	recipe, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title:       "Mercimek Çorbası",
		Ingredients: []string{"salt", "water"},
		Steps:       []string{"Kaynat", "Blenderdan geçir"},
		AuthorName:  "Ayşe",
		AuthorEmail: "ayse@example.com",
	})
	require.NoError(t, err)
	return recipe
}

func TestCreateRecipe_IngredientsRoundTrip(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)

	created := createTestRecipe(t, recipeService)

	fetched, err := recipeService.GetRecipe(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"salt", "water"}, fetched.Ingredients)
	assert.Equal(t, []string{"Kaynat", "Blenderdan geçir"}, fetched.Steps)
	assert.Equal(t, []string{}, fetched.GalleryImages)
	assert.Nil(t, fetched.IsLiked)
}

func TestCreateRecipe_Validation(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)

	_, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title:       "  ",
		AuthorEmail: "ayse@example.com",
	})
	assert.ErrorIs(t, err, ErrRecipeTitleRequired)

	_, err = recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title: "Çorba",
	})
	assert.ErrorIs(t, err, ErrAuthorEmailRequired)
}

func TestCreateRecipe_BlankAuthorNameDefaults(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)

	recipe, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title:       "Çorba",
		AuthorName:  "  ",
		AuthorEmail: "Ayse@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kullanici", recipe.AuthorName)
	assert.Equal(t, "ayse@example.com", recipe.AuthorEmail)
}

func TestUpdateRecipe_AuthorOnly(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	_, err := recipeService.UpdateRecipe(created.ID, &model.RecipeUpdateRequest{
		Title: strPtr("Yeni Başlık"),
	})
	assert.ErrorIs(t, err, ErrUserEmailRequired)

	_, err = recipeService.UpdateRecipe(created.ID, &model.RecipeUpdateRequest{
		UserEmail: strPtr("baskasi@example.com"),
		Title:     strPtr("Yeni Başlık"),
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	updated, err := recipeService.UpdateRecipe(created.ID, &model.RecipeUpdateRequest{
		UserEmail: strPtr("AYSE@example.com"),
		Title:     strPtr("Yeni Başlık"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Yeni Başlık", updated.Title)
	// untouched list fields survive
	assert.Equal(t, []string{"salt", "water"}, updated.Ingredients)
}

func TestUpdateRecipe_EmptyArrayClearsList(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	updated, err := recipeService.UpdateRecipe(created.ID, &model.RecipeUpdateRequest{
		UserEmail:   strPtr("ayse@example.com"),
		Ingredients: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, updated.Ingredients)
	assert.Equal(t, []string{"Kaynat", "Blenderdan geçir"}, updated.Steps)
}

func TestToggleLike_TwiceRestoresState(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	liked, likes, err := recipeService.ToggleLike(created.ID, "fan@example.com")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, likes)

	liked, likes, err = recipeService.ToggleLike(created.ID, "FAN@example.com")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, likes)
}

func TestToggleLike_Validation(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)

	_, _, err := recipeService.ToggleLike(1, "  ")
	assert.ErrorIs(t, err, ErrUserEmailRequired)

	_, _, err = recipeService.ToggleLike(9999, "fan@example.com")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestListRecipes_FiltersAndViewerProjection(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	_, err := recipeService.CreateRecipe(&model.RecipeCreateRequest{
		Title:       "Başka Tarif",
		AuthorName:  "Mehmet",
		AuthorEmail: "mehmet@example.com",
	})
	require.NoError(t, err)

	_, _, err = recipeService.ToggleLike(created.ID, "fan@example.com")
	require.NoError(t, err)

	all, err := recipeService.ListRecipes("", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, recipe := range all {
		assert.Nil(t, recipe.IsLiked)
	}

	mine, err := recipeService.ListRecipes("AYSE@example.com", "fan@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)
	require.NotNil(t, mine[0].IsLiked)
	assert.True(t, *mine[0].IsLiked)
	assert.Equal(t, 1, mine[0].Likes)
}

func TestComments_LiveCountPreferred(t *testing.T) {
	recipeService, testDB := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	comment, err := recipeService.CreateComment(created.ID, &model.RecipeCommentCreateRequest{
		Comment: "Çok güzel olmuş",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kullanici", comment.AuthorName)

	fetched, err := recipeService.GetRecipe(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Comments)

	// drift the stored counter; the live count wins
	require.NoError(t, testDB.Model(&model.Recipe{}).Where("id = ?", created.ID).Update("comments", 7).Error)
	fetched, err = recipeService.GetRecipe(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Comments)

	comments, err := recipeService.ListComments(created.ID, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Çok güzel olmuş", comments[0].Comment)
}

func TestCreateComment_Validation(t *testing.T) {
	recipeService, _ := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	_, err := recipeService.CreateComment(created.ID, &model.RecipeCommentCreateRequest{Comment: "  "})
	assert.ErrorIs(t, err, ErrCommentRequired)

	_, err = recipeService.CreateComment(9999, &model.RecipeCommentCreateRequest{Comment: "merhaba"})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	recipeService, testDB := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	_, _, err := recipeService.ToggleLike(created.ID, "fan@example.com")
	require.NoError(t, err)
	_, err = recipeService.CreateComment(created.ID, &model.RecipeCommentCreateRequest{Comment: "merhaba"})
	require.NoError(t, err)

	notebookRepo := repository.NewNotebookRepository(testDB)
	notebook := &model.RecipeNotebook{Title: "Favoriler"}
	require.NoError(t, notebookRepo.Create(notebook))
	require.NoError(t, notebookRepo.AddItem(notebook.ID, created.ID))

	assert.ErrorIs(t, recipeService.DeleteRecipe(created.ID, "baskasi@example.com"), ErrNotAuthorized)
	require.NoError(t, recipeService.DeleteRecipe(created.ID, "ayse@example.com"))

	_, err = recipeService.GetRecipe(created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	var likeCount, commentCount, itemCount int64
	testDB.Model(&model.RecipeLike{}).Where("recipe_id = ?", created.ID).Count(&likeCount)
	testDB.Model(&model.RecipeComment{}).Where("recipe_id = ?", created.ID).Count(&commentCount)
	testDB.Model(&model.RecipeNotebookItem{}).Where("recipe_id = ?", created.ID).Count(&itemCount)
	assert.Zero(t, likeCount)
	assert.Zero(t, commentCount)
	assert.Zero(t, itemCount)
}

func TestRecipeSaveCounts(t *testing.T) {
	recipeService, testDB := setupRecipeServiceTest(t)
	created := createTestRecipe(t, recipeService)

	notebookRepo := repository.NewNotebookRepository(testDB)
	for _, title := range []string{"Favoriler", "Denenecekler"} {
		notebook := &model.RecipeNotebook{Title: title}
		require.NoError(t, notebookRepo.Create(notebook))
		require.NoError(t, notebookRepo.AddItem(notebook.ID, created.ID))
	}

	fetched, err := recipeService.GetRecipe(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.Saves)
}
