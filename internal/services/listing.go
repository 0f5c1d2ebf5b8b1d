package services

import (
	"sort"
	"strings"

	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func avgOf(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// ratingValuesByRecipe indexes all rating values by recipe id in one pass.
func ratingValuesByRecipe(ds *models.Dataset) map[string][]int {
	byRecipe := make(map[string][]int)
	for _, r := range ds.Ratings {
		byRecipe[r.RecipeID] = append(byRecipe[r.RecipeID], r.Value)
	}
	return byRecipe
}

func favoritesCountByRecipe(ds *models.Dataset) map[string]int {
	counts := make(map[string]int)
	for _, f := range ds.Favorites {
		counts[f.RecipeID]++
	}
	return counts
}

// recipeVisible is the visibility rule for direct reads (detail, ratings,
// comment threads): public, or privileged caller, or the recipe's own author
// regardless of their current role. A moderation cascade can unpublish any
// author's recipe, so authorship alone must keep it reachable. Invisible
// recipes read as not-found, never forbidden.
func recipeVisible(actor *models.User, recipe *models.Recipe) bool {
	if recipe.IsPublic {
		return true
	}
	if actor == nil {
		return false
	}
	if authz.CanModerate(actor) {
		return true
	}
	return recipe.AuthorID == actor.ID
}

// recipeListable gates the public catalog: private recipes surface there for
// their author only while the author holds the creator role.
func recipeListable(actor *models.User, recipe *models.Recipe) bool {
	if recipe.IsPublic {
		return true
	}
	if actor == nil {
		return false
	}
	if authz.CanModerate(actor) {
		return true
	}
	return actor.Role == models.RoleCreator && recipe.AuthorID == actor.ID
}

func listItemFor(recipe *models.Recipe, values []int, favoritesCount int) dto.RecipeListItem {
	return dto.RecipeListItem{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Description:    recipe.Description,
		ImageURL:       recipe.ImageURL,
		CategoryID:     recipe.CategoryID,
		Tags:           recipe.Tags,
		AuthorID:       recipe.AuthorID,
		CreatedAt:      recipe.CreatedAt,
		Views:          recipe.Views,
		AvgRating:      avgOf(values),
		RatingsCount:   len(values),
		FavoritesCount: favoritesCount,
	}
}

type recipeFilters struct {
	categoryID       string
	tags             []string
	textSearch       string
	ingredientSearch string
	minRating        float64
}

func filtersFrom(q dto.RecipeListQuery) recipeFilters {
	f := recipeFilters{
		categoryID:       q.CategoryID,
		textSearch:       normalize(q.TextSearch),
		ingredientSearch: normalize(q.IngredientSearch),
		minRating:        q.MinRating,
	}
	for _, t := range q.Tags {
		if n := normalize(t); n != "" {
			f.tags = append(f.tags, n)
		}
	}
	return f
}

func (f recipeFilters) match(recipe *models.Recipe, avgRating float64) bool {
	if f.categoryID != "" && recipe.CategoryID != f.categoryID {
		return false
	}

	if len(f.tags) > 0 {
		recipeTags := make(map[string]bool, len(recipe.Tags))
		for _, t := range recipe.Tags {
			recipeTags[normalize(t)] = true
		}
		for _, t := range f.tags {
			if !recipeTags[t] {
				return false
			}
		}
	}

	if f.textSearch != "" {
		haystack := normalize(recipe.Title + " " + recipe.Description + " " + strings.Join(recipe.Tags, " "))
		if !strings.Contains(haystack, f.textSearch) {
			return false
		}
	}

	if f.ingredientSearch != "" {
		parts := make([]string, 0, len(recipe.Ingredients))
		for _, ing := range recipe.Ingredients {
			parts = append(parts, ing.Text)
		}
		if !strings.Contains(normalize(strings.Join(parts, " ")), f.ingredientSearch) {
			return false
		}
	}

	if f.minRating > 0 && avgRating < f.minRating {
		return false
	}
	return true
}

// sortRecipeItems orders items by the requested key. The sort is stable so
// ties keep the container order.
func sortRecipeItems(items []dto.RecipeListItem, by dto.RecipeSortBy, dir dto.SortDir) {
	mult := -1.0
	if dir == dto.SortAsc {
		mult = 1.0
	}

	key := func(it dto.RecipeListItem) float64 {
		switch by {
		case dto.SortRating:
			return it.AvgRating
		case dto.SortPopularity:
			return float64(it.Views + it.FavoritesCount*10)
		default:
			return float64(it.CreatedAt.UnixMilli())
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return mult*(key(items[i])-key(items[j])) < 0
	})
}
