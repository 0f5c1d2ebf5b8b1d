package dto

import (
	"time"

	"github.com/recipeshare/server/internal/models"
)

type RecipeSortBy string

const (
	SortNewest     RecipeSortBy = "newest"
	SortRating     RecipeSortBy = "rating"
	SortPopularity RecipeSortBy = "popularity"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// RecipeListQuery carries the filters of GET /recipes. All text matching is
// case-insensitive substring matching; Tags must all be present on a recipe.
type RecipeListQuery struct {
	Page             int
	PageSize         int
	SortBy           RecipeSortBy
	SortDir          SortDir
	CategoryID       string
	Tags             []string
	TextSearch       string
	IngredientSearch string
	MinRating        float64
}

type RecipeListItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	CategoryID     string    `json:"categoryId"`
	Tags           []string  `json:"tags"`
	AuthorID       string    `json:"authorId"`
	CreatedAt      time.Time `json:"createdAt"`
	Views          int       `json:"views"`
	AvgRating      float64   `json:"avgRating"`
	RatingsCount   int       `json:"ratingsCount"`
	FavoritesCount int       `json:"favoritesCount"`
}

type RecipeDetail struct {
	RecipeListItem
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	IsPublic    bool                `json:"isPublic"`
}

type RecipeUpsert struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	CategoryID  string              `json:"categoryId" validate:"required"`
	Tags        []string            `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	IsPublic    bool                `json:"isPublic"`
}
