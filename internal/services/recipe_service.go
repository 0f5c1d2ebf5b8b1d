package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/store"
)

type RecipeService struct {
	store *store.Store
}

func NewRecipeService(st *store.Store) *RecipeService {
	return &RecipeService{store: st}
}

const defaultRecipePageSize = 12

// List returns the public catalog page for the caller, with per-recipe rating
// and favorite aggregates computed over the full collections.
func (s *RecipeService) List(ctx context.Context, creds authz.Credentials, q dto.RecipeListQuery) (*dto.PagedResult[dto.RecipeListItem], error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor := authz.CurrentUser(ds.Users, creds)

	return s.page(ds, q, func(r *models.Recipe) bool {
		return recipeListable(actor, r)
	}), nil
}

// ListMine is the creator's management view over their own recipes, public or
// not.
func (s *RecipeService) ListMine(ctx context.Context, creds authz.Credentials, q dto.RecipeListQuery) (*dto.PagedResult[dto.RecipeListItem], error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateRecipes(actor) {
		return nil, apierr.Forbidden("Only creators can manage recipes.")
	}

	return s.page(ds, q, func(r *models.Recipe) bool {
		return r.AuthorID == actor.ID
	}), nil
}

func (s *RecipeService) page(ds *models.Dataset, q dto.RecipeListQuery, include func(*models.Recipe) bool) *dto.PagedResult[dto.RecipeListItem] {
	page := dto.ClampPage(q.Page)
	pageSize := dto.ClampPageSize(q.PageSize, defaultRecipePageSize)
	filters := filtersFrom(q)

	ratings := ratingValuesByRecipe(ds)
	favorites := favoritesCountByRecipe(ds)

	items := make([]dto.RecipeListItem, 0, len(ds.Recipes))
	for i := range ds.Recipes {
		recipe := &ds.Recipes[i]
		if !include(recipe) {
			continue
		}
		values := ratings[recipe.ID]
		if !filters.match(recipe, avgOf(values)) {
			continue
		}
		items = append(items, listItemFor(recipe, values, favorites[recipe.ID]))
	}

	sortRecipeItems(items, q.SortBy, q.SortDir)

	return &dto.PagedResult[dto.RecipeListItem]{
		Items:    dto.Paginate(items, page, pageSize),
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}
}

// GetByID returns the detail view and bumps the view counter as a side
// effect of the read. The response carries the post-increment count without a
// second load.
func (s *RecipeService) GetByID(ctx context.Context, creds authz.Credentials, id string) (*dto.RecipeDetail, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor := authz.CurrentUser(ds.Users, creds)

	recipe := ds.RecipeByID(id)
	if recipe == nil || !recipeVisible(actor, recipe) {
		return nil, apierr.NotFound("Recipe not found.")
	}

	var values []int
	for _, r := range ds.Ratings {
		if r.RecipeID == recipe.ID {
			values = append(values, r.Value)
		}
	}
	favoritesCount := 0
	for _, f := range ds.Favorites {
		if f.RecipeID == recipe.ID {
			favoritesCount++
		}
	}

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		if r := d.RecipeByID(recipe.ID); r != nil {
			r.Views++
		}
	}); err != nil {
		return nil, err
	}

	item := listItemFor(recipe, values, favoritesCount)
	item.Views = recipe.Views + 1
	return &dto.RecipeDetail{
		RecipeListItem: item,
		Ingredients:    recipe.Ingredients,
		Steps:          recipe.Steps,
		IsPublic:       recipe.IsPublic,
	}, nil
}

func (s *RecipeService) Create(ctx context.Context, creds authz.Credentials, req dto.RecipeUpsert) (*dto.RecipeDetail, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateRecipes(actor) {
		return nil, apierr.Forbidden("Only creators can create recipes.")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apierr.Validation("Title is required.")
	}
	if req.CategoryID == "" {
		return nil, apierr.Validation("Category is required.")
	}

	now := time.Now().UTC()
	recipe := models.Recipe{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CategoryID:  req.CategoryID,
		Tags:        cleanTags(req.Tags),
		Ingredients: orEmptyIngredients(req.Ingredients),
		Steps:       orEmptySteps(req.Steps),
		AuthorID:    actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsPublic:    req.IsPublic,
		Views:       0,
	}

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		d.Recipes = append([]models.Recipe{recipe}, d.Recipes...)
	}); err != nil {
		return nil, err
	}

	return &dto.RecipeDetail{
		RecipeListItem: listItemFor(&recipe, nil, 0),
		Ingredients:    recipe.Ingredients,
		Steps:          recipe.Steps,
		IsPublic:       recipe.IsPublic,
	}, nil
}

func (s *RecipeService) Update(ctx context.Context, creds authz.Credentials, id string, req dto.RecipeUpsert) (*dto.RecipeDetail, error) {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return nil, err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateRecipes(actor) {
		return nil, apierr.Forbidden("Only creators can edit recipes.")
	}

	existing := ds.RecipeByID(id)
	if existing == nil {
		return nil, apierr.NotFound("Recipe not found.")
	}
	if existing.AuthorID != actor.ID {
		return nil, apierr.Forbidden("You can only edit your own recipes.")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apierr.Validation("Title is required.")
	}

	updated := *existing
	updated.Title = title
	updated.Description = strings.TrimSpace(req.Description)
	updated.ImageURL = strings.TrimSpace(req.ImageURL)
	updated.CategoryID = req.CategoryID
	updated.Tags = cleanTags(req.Tags)
	updated.Ingredients = orEmptyIngredients(req.Ingredients)
	updated.Steps = orEmptySteps(req.Steps)
	updated.IsPublic = req.IsPublic
	updated.UpdatedAt = time.Now().UTC()

	if _, err := s.store.Update(ctx, func(d *models.Dataset) {
		if r := d.RecipeByID(id); r != nil {
			*r = updated
		}
	}); err != nil {
		return nil, err
	}

	var values []int
	for _, r := range ds.Ratings {
		if r.RecipeID == updated.ID {
			values = append(values, r.Value)
		}
	}
	favoritesCount := 0
	for _, f := range ds.Favorites {
		if f.RecipeID == updated.ID {
			favoritesCount++
		}
	}

	return &dto.RecipeDetail{
		RecipeListItem: listItemFor(&updated, values, favoritesCount),
		Ingredients:    updated.Ingredients,
		Steps:          updated.Steps,
		IsPublic:       updated.IsPublic,
	}, nil
}

// Delete removes the recipe and cascades to every comment, rating, favorite
// and report that targets it.
func (s *RecipeService) Delete(ctx context.Context, creds authz.Credentials, id string) error {
	ds, err := s.store.Require(ctx)
	if err != nil {
		return err
	}
	actor, err := authz.RequireUser(ds.Users, creds)
	if err != nil {
		return err
	}

	recipe := ds.RecipeByID(id)
	if recipe == nil {
		return apierr.NotFound("Recipe not found.")
	}

	canDeleteAny := authz.CanModerate(actor)
	canDeleteOwn := actor.Role == models.RoleCreator && recipe.AuthorID == actor.ID
	if !canDeleteAny && !canDeleteOwn {
		return apierr.Forbidden("You do not have permission to delete this.")
	}

	_, err = s.store.Update(ctx, func(d *models.Dataset) {
		recipes := d.Recipes[:0]
		for _, r := range d.Recipes {
			if r.ID != id {
				recipes = append(recipes, r)
			}
		}
		d.Recipes = recipes

		comments := d.Comments[:0]
		for _, c := range d.Comments {
			if c.RecipeID != id {
				comments = append(comments, c)
			}
		}
		d.Comments = comments

		ratings := d.Ratings[:0]
		for _, r := range d.Ratings {
			if r.RecipeID != id {
				ratings = append(ratings, r)
			}
		}
		d.Ratings = ratings

		favorites := d.Favorites[:0]
		for _, f := range d.Favorites {
			if f.RecipeID != id {
				favorites = append(favorites, f)
			}
		}
		d.Favorites = favorites

		reports := d.Reports[:0]
		for _, rep := range d.Reports {
			if !(rep.TargetType == models.ReportTargetRecipe && rep.TargetID == id) {
				reports = append(reports, rep)
			}
		}
		d.Reports = reports
	})
	return err
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func orEmptyIngredients(in []models.Ingredient) []models.Ingredient {
	if in == nil {
		return []models.Ingredient{}
	}
	return in
}

func orEmptySteps(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
