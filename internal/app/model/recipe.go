package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// StringArray persists an ordered list of strings as a JSON-encoded TEXT
// column. Stored values that fail to decode, or decode to something other
// than an array of strings, scan as an empty list rather than an error; old
// rows with hand-edited or corrupt payloads must keep loading.
type StringArray []string

// Value implements database/sql/driver.Valuer
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan implements database/sql.Scanner
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("failed to scan StringArray")
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		*s = StringArray{}
		return nil
	}

	result := make(StringArray, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		result = append(result, item)
	}
	*s = result
	return nil
}

// Recipe is a community recipe post. Authors are identified by email only.
// Likes and Comments are denormalized counters; the comment counter may drift
// and is superseded by a live count in responses whenever one is available.
type Recipe struct {
	ID             uint        `gorm:"primarykey" json:"id"`
	Title          string      `gorm:"not null" json:"title"`
	Subtitle       *string     `json:"subtitle"`
	Story          *string     `gorm:"type:text" json:"story"`
	Ingredients    StringArray `gorm:"column:ingredients_json;type:text" json:"ingredients"`
	Steps          StringArray `gorm:"column:steps_json;type:text" json:"steps"`
	Category       *string     `json:"category"`
	Servings       *string     `json:"servings"`
	PrepTime       *string     `json:"prep_time"`
	CookTime       *string     `json:"cook_time"`
	Equipment      *string     `json:"equipment"`
	Method         *string     `json:"method"`
	CoverImageURL  *string     `json:"cover_image_url"`
	GalleryImages  StringArray `gorm:"column:gallery_json;type:text" json:"gallery_images"`
	AuthorName     string      `json:"author_name"`
	AuthorEmail    string      `gorm:"index" json:"author_email"`
	AuthorPhotoURL *string     `json:"author_photo_url"`
	Likes          int         `gorm:"default:0" json:"likes"`
	Comments       int         `gorm:"default:0" json:"comments"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

type RecipeComment struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	RecipeID    uint      `gorm:"not null;index" json:"recipe_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail *string   `json:"-"`
	Comment     string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func (RecipeComment) TableName() string {
	return "recipe_comments"
}

// RecipeLike is one user's like on one recipe. Emails are stored lowercase,
// so the composite unique index is the single-like-per-user invariant.
type RecipeLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	RecipeID  uint      `gorm:"not null;index:idx_recipe_user_like,unique" json:"recipe_id"`
	UserEmail string    `gorm:"not null;index:idx_recipe_user_like,unique" json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

func (RecipeLike) TableName() string {
	return "recipe_likes"
}

// RecipeCreateRequest new recipe payload
type RecipeCreateRequest struct {
	Title          string   `json:"title"`
	Subtitle       *string  `json:"subtitle"`
	Story          *string  `json:"story"`
	Ingredients    []string `json:"ingredients"`
	Steps          []string `json:"steps"`
	Category       *string  `json:"category"`
	Servings       *string  `json:"servings"`
	PrepTime       *string  `json:"prep_time"`
	CookTime       *string  `json:"cook_time"`
	Equipment      *string  `json:"equipment"`
	Method         *string  `json:"method"`
	CoverImageURL  *string  `json:"cover_image_url"`
	GalleryImages  []string `json:"gallery_images"`
	AuthorName     string   `json:"author_name"`
	AuthorEmail    string   `json:"author_email"`
	AuthorPhotoURL *string  `json:"author_photo_url"`
}

// RecipeUpdateRequest author-only partial update. Nil slices mean "leave
// alone"; an explicit empty array clears the list.
type RecipeUpdateRequest struct {
	UserEmail     *string  `json:"user_email"`
	Title         *string  `json:"title"`
	Subtitle      *string  `json:"subtitle"`
	Story         *string  `json:"story"`
	Ingredients   []string `json:"ingredients"`
	Steps         []string `json:"steps"`
	Category      *string  `json:"category"`
	Servings      *string  `json:"servings"`
	PrepTime      *string  `json:"prep_time"`
	CookTime      *string  `json:"cook_time"`
	Equipment     *string  `json:"equipment"`
	Method        *string  `json:"method"`
	CoverImageURL *string  `json:"cover_image_url"`
	GalleryImages []string `json:"gallery_images"`
}

type RecipeCommentCreateRequest struct {
	AuthorName  *string `json:"author_name"`
	AuthorEmail *string `json:"author_email"`
	Comment     string  `json:"comment"`
}

type RecipeLikeToggleRequest struct {
	UserEmail string `json:"user_email"`
}

// RecipeResponse is the recipe read projection. Comments prefers a live
// count; Saves counts notebook memberships across all notebooks. IsLiked is
// only set when the request named a viewer.
type RecipeResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Subtitle       *string   `json:"subtitle"`
	Story          *string   `json:"story"`
	Ingredients    []string  `json:"ingredients"`
	Steps          []string  `json:"steps"`
	Category       *string   `json:"category"`
	Servings       *string   `json:"servings"`
	PrepTime       *string   `json:"prep_time"`
	CookTime       *string   `json:"cook_time"`
	Equipment      *string   `json:"equipment"`
	Method         *string   `json:"method"`
	CoverImageURL  *string   `json:"cover_image_url"`
	GalleryImages  []string  `json:"gallery_images"`
	AuthorName     string    `json:"author_name"`
	AuthorEmail    string    `json:"author_email"`
	AuthorPhotoURL *string   `json:"author_photo_url"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Saves          int       `json:"saves"`
	CreatedAt      time.Time `json:"created_at"`
	IsLiked        *bool     `json:"is_liked"`
}
